package services

import (
	"context"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/models"
	"storefront/notification"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrMobile(ctx context.Context, email, mobile string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error)
	AddAddress(ctx context.Context, id primitive.ObjectID, addr models.Address) (*models.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	FindAll(ctx context.Context) ([]models.Offer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Offer, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Offer, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.OfferPatch) (*models.Offer, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type BannerRepository interface {
	Create(ctx context.Context, banner *models.Banner) error
	FindAll(ctx context.Context) ([]models.Banner, error)
	FindActive(ctx context.Context) ([]models.Banner, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.BannerPatch) (*models.Banner, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.OrderPatch) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ObjectStore persists uploaded files and hands out fetchable URLs for them.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	PresignURL(ctx context.Context, key string) (string, error)
}

type Notifier interface {
	Enqueue(job notification.Job) bool
}

// presign resolves a stored key to a URL. Without a store, or when signing
// fails, the key is returned as is.
func presign(ctx context.Context, store ObjectStore, key string) string {
	if store == nil || key == "" || strings.HasPrefix(key, "http") {
		return key
	}
	url, err := store.PresignURL(ctx, key)
	if err != nil {
		log.Printf("presign %s: %v", key, err)
		return key
	}
	return url
}

func presignAll(ctx context.Context, store ObjectStore, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, presign(ctx, store, k))
	}
	return out
}

func byID[T any](docs []T, idOf func(*T) primitive.ObjectID) map[primitive.ObjectID]*T {
	m := make(map[primitive.ObjectID]*T, len(docs))
	for i := range docs {
		m[idOf(&docs[i])] = &docs[i]
	}
	return m
}
