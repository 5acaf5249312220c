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

type ProductRepository struct {
	crud[models.Product]
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{crud[models.Product]{coll: db.Collection(database.ProductsCollection)}}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Images == nil {
		product.Images = []string{}
	}
	return r.insert(ctx, product)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return r.findByID(ctx, id)
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return r.findByIDs(ctx, ids)
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category": categoryID})
}

func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error) {
	set, err := patch.Fields()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid product update", err)
	}
	set["updatedAt"] = time.Now()
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.deleteByID(ctx, id)
}
