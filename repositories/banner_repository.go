package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/apperr"
	"storefront/database"
	"storefront/models"
)

type BannerRepository struct {
	crud[models.Banner]
}

func NewBannerRepository(db *mongo.Database) *BannerRepository {
	return &BannerRepository{crud[models.Banner]{coll: db.Collection(database.BannersCollection)}}
}

func (r *BannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	if banner.ID.IsZero() {
		banner.ID = primitive.NewObjectID()
	}
	now := time.Now()
	banner.CreatedAt = now
	banner.UpdatedAt = now
	return r.insert(ctx, banner)
}

func (r *BannerRepository) FindAll(ctx context.Context) ([]models.Banner, error) {
	return r.find(ctx, bson.M{})
}

func (r *BannerRepository) FindActive(ctx context.Context) ([]models.Banner, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *BannerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	return r.findByID(ctx, id)
}

func (r *BannerRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.BannerPatch) (*models.Banner, error) {
	set, err := patch.Fields()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid banner update", err)
	}
	set["updatedAt"] = time.Now()
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *BannerRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.deleteByID(ctx, id)
}
