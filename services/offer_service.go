package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
	"storefront/models"
)

type OfferService struct {
	offers   OfferRepository
	products ProductRepository
	store    ObjectStore
}

func NewOfferService(offers OfferRepository, products ProductRepository, store ObjectStore) *OfferService {
	return &OfferService{offers: offers, products: products, store: store}
}

func (s *OfferService) Create(ctx context.Context, in models.OfferInput) (*models.OfferDetail, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	productIDs, err := models.ParseObjectIDs(in.Products)
	if err != nil {
		return nil, apperr.Validation("products must be a valid id")
	}

	offer := &models.Offer{
		Name:               in.Name,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		Products:           productIDs,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	return s.detail(ctx, offer)
}

func (s *OfferService) List(ctx context.Context) ([]models.OfferDetail, error) {
	offers, err := s.offers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.OfferDetail, 0, len(offers))
	for i := range offers {
		d, err := s.detail(ctx, &offers[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func (s *OfferService) Get(ctx context.Context, id primitive.ObjectID) (*models.OfferDetail, error) {
	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, apperr.NotFound("Offer not found")
	}
	return s.detail(ctx, offer)
}

func (s *OfferService) Update(ctx context.Context, id primitive.ObjectID, patch models.OfferPatch) (*models.OfferDetail, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	if patch.StartDate != nil || patch.EndDate != nil {
		current, err := s.offers.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, apperr.NotFound("Offer not found")
		}
		start, end := current.StartDate, current.EndDate
		if patch.StartDate != nil {
			start = *patch.StartDate
		}
		if patch.EndDate != nil {
			end = *patch.EndDate
		}
		if end.Before(start) {
			return nil, apperr.Validation("endDate must not be before startDate")
		}
	}
	offer, err := s.offers.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, apperr.NotFound("Offer not found")
	}
	return s.detail(ctx, offer)
}

func (s *OfferService) Delete(ctx context.Context, id primitive.ObjectID) error {
	removed, err := s.offers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("Offer not found")
	}
	return nil
}

func (s *OfferService) detail(ctx context.Context, offer *models.Offer) (*models.OfferDetail, error) {
	products, err := s.products.FindByIDs(ctx, offer.Products)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Images = presignAll(ctx, s.store, products[i].Images)
	}
	return &models.OfferDetail{Offer: *offer, Products: products}, nil
}
