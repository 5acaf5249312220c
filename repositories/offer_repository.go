package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/apperr"
	"storefront/database"
	"storefront/models"
)

type OfferRepository struct {
	crud[models.Offer]
}

func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{crud[models.Offer]{coll: db.Collection(database.OffersCollection)}}
}

func (r *OfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	if offer.ID.IsZero() {
		offer.ID = primitive.NewObjectID()
	}
	if offer.Products == nil {
		offer.Products = []primitive.ObjectID{}
	}
	return r.insert(ctx, offer)
}

func (r *OfferRepository) FindAll(ctx context.Context) ([]models.Offer, error) {
	return r.find(ctx, bson.M{})
}

func (r *OfferRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Offer, error) {
	return r.findByID(ctx, id)
}

func (r *OfferRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Offer, error) {
	return r.findByIDs(ctx, ids)
}

// Offers carry no timestamps, so the update is the patch alone.
func (r *OfferRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.OfferPatch) (*models.Offer, error) {
	set, err := patch.Fields()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid offer update", err)
	}
	if len(set) == 0 {
		return r.findByID(ctx, id)
	}
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *OfferRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.deleteByID(ctx, id)
}
