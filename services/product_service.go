package services

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
	"storefront/models"
	"storefront/storage"
)

type ProductService struct {
	products   ProductRepository
	categories CategoryRepository
	offers     OfferRepository
	store      ObjectStore
}

func NewProductService(products ProductRepository, categories CategoryRepository, offers OfferRepository, store ObjectStore) *ProductService {
	return &ProductService{products: products, categories: categories, offers: offers, store: store}
}

// Create stores the product with its uploaded images. The category id is
// recorded as given; it is not required to exist.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput, images []io.Reader) (*models.ProductDetail, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	categoryID, err := primitive.ObjectIDFromHex(in.Category)
	if err != nil {
		return nil, apperr.Validation("category must be a valid id")
	}

	product := &models.Product{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    categoryID,
		Sizes:       in.Sizes,
		Images:      []string{},
	}
	if in.OfferID != "" {
		offerID, err := primitive.ObjectIDFromHex(in.OfferID)
		if err != nil {
			return nil, apperr.Validation("offerId must be a valid id")
		}
		product.OfferID = &offerID
	}

	if len(images) > 0 && s.store == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	for n, img := range images {
		body, err := storage.Recompress(img)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "Invalid image file", err)
		}
		key := storage.ProductImageKey(product.ID.Hex(), n)
		if err := s.store.Upload(ctx, key, body, storage.ImageContentType); err != nil {
			return nil, err
		}
		product.Images = append(product.Images, key)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	details, err := s.populate(ctx, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductDetail, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, products)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.ProductDetail, error) {
	products, err := s.products.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, products)
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*models.ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}
	details, err := s.populate(ctx, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.ProductDetail, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	product, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}
	details, err := s.populate(ctx, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	removed, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("Product not found")
	}
	return nil
}

// populate expands category and offer references with one lookup per
// collection. Dangling references stay nil.
func (s *ProductService) populate(ctx context.Context, products []models.Product) ([]models.ProductDetail, error) {
	var categoryIDs, offerIDs []primitive.ObjectID
	for _, p := range products {
		categoryIDs = append(categoryIDs, p.Category)
		if p.OfferID != nil {
			offerIDs = append(offerIDs, *p.OfferID)
		}
	}

	categories, err := s.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	offers, err := s.offers.FindByIDs(ctx, offerIDs)
	if err != nil {
		return nil, err
	}
	categoryByID := byID(categories, func(c *models.Category) primitive.ObjectID { return c.ID })
	offerByID := byID(offers, func(o *models.Offer) primitive.ObjectID { return o.ID })

	out := make([]models.ProductDetail, 0, len(products))
	for _, p := range products {
		d := models.ProductDetail{Product: p, Category: categoryByID[p.Category]}
		if p.OfferID != nil {
			d.Offer = offerByID[*p.OfferID]
		}
		d.Images = presignAll(ctx, s.store, p.Images)
		out = append(out, d)
	}
	return out, nil
}
