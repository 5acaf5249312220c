package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/apperr"
	"storefront/database"
	"storefront/models"
)

type UserRepository struct {
	crud[models.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{crud[models.User]{coll: db.Collection(database.UsersCollection)}}
}

// Create inserts a new user. A unique index violation is reported as a
// conflict so concurrent signups with the same email cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Addresses == nil {
		user.Addresses = []models.Address{}
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Wrap(apperr.KindConflict, "User already exists", err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findByID(ctx, id)
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	return r.findByIDs(ctx, ids)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByEmailOrMobile matches on whichever of the two identifiers is set.
func (r *UserRepository) FindByEmailOrMobile(ctx context.Context, email, mobile string) (*models.User, error) {
	or := bson.A{}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if mobile != "" {
		or = append(or, bson.M{"mobile": mobile})
	}
	if len(or) == 0 {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error) {
	set := patch.Fields()
	set["updatedAt"] = time.Now()
	user, err := r.updateByID(ctx, id, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperr.Wrap(apperr.KindConflict, "User already exists", err)
	}
	return user, err
}

func (r *UserRepository) AddAddress(ctx context.Context, id primitive.ObjectID, addr models.Address) (*models.User, error) {
	return r.updateByID(ctx, id, bson.M{
		"$push": bson.M{"addresses": addr},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}
