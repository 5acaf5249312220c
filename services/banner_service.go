package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
	"storefront/models"
)

type BannerService struct {
	banners BannerRepository
	offers  OfferRepository
	store   ObjectStore
}

func NewBannerService(banners BannerRepository, offers OfferRepository, store ObjectStore) *BannerService {
	return &BannerService{banners: banners, offers: offers, store: store}
}

func (s *BannerService) Create(ctx context.Context, in models.BannerInput) (*models.BannerDetail, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	banner := &models.Banner{Title: in.Title, Image: in.Image, IsActive: true}
	if in.IsActive != nil {
		banner.IsActive = *in.IsActive
	}
	if in.Link != "" {
		link, err := primitive.ObjectIDFromHex(in.Link)
		if err != nil {
			return nil, apperr.Validation("link must be a valid id")
		}
		banner.Link = &link
	}
	if err := s.banners.Create(ctx, banner); err != nil {
		return nil, err
	}
	details, err := s.populate(ctx, []models.Banner{*banner})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *BannerService) List(ctx context.Context) ([]models.BannerDetail, error) {
	banners, err := s.banners.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, banners)
}

func (s *BannerService) ListActive(ctx context.Context) ([]models.BannerDetail, error) {
	banners, err := s.banners.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, banners)
}

func (s *BannerService) Get(ctx context.Context, id primitive.ObjectID) (*models.BannerDetail, error) {
	banner, err := s.banners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, apperr.NotFound("Banner not found")
	}
	details, err := s.populate(ctx, []models.Banner{*banner})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *BannerService) Update(ctx context.Context, id primitive.ObjectID, patch models.BannerPatch) (*models.BannerDetail, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	banner, err := s.banners.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, apperr.NotFound("Banner not found")
	}
	details, err := s.populate(ctx, []models.Banner{*banner})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *BannerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	removed, err := s.banners.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("Banner not found")
	}
	return nil
}

func (s *BannerService) populate(ctx context.Context, banners []models.Banner) ([]models.BannerDetail, error) {
	var offerIDs []primitive.ObjectID
	for _, b := range banners {
		if b.Link != nil {
			offerIDs = append(offerIDs, *b.Link)
		}
	}
	offers, err := s.offers.FindByIDs(ctx, offerIDs)
	if err != nil {
		return nil, err
	}
	offerByID := byID(offers, func(o *models.Offer) primitive.ObjectID { return o.ID })

	out := make([]models.BannerDetail, 0, len(banners))
	for _, b := range banners {
		d := models.BannerDetail{Banner: b}
		if b.Link != nil {
			d.Link = offerByID[*b.Link]
		}
		d.Image = presign(ctx, s.store, b.Image)
		out = append(out, d)
	}
	return out, nil
}
