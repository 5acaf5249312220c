package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/database"
	"storefront/models"
)

type CategoryRepository struct {
	crud[models.Category]
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{crud[models.Category]{coll: db.Collection(database.CategoriesCollection)}}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	return r.insert(ctx, category)
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	return r.find(ctx, bson.M{})
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return r.findByID(ctx, id)
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	return r.findByIDs(ctx, ids)
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *CategoryRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.CategoryPatch) (*models.Category, error) {
	set := patch.Fields()
	set["updatedAt"] = time.Now()
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.deleteByID(ctx, id)
}
