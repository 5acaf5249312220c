package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SizeVariant is a purchasable size of a product with its own price and stock.
type SizeVariant struct {
	Label string  `bson:"label" json:"label" validate:"required"`
	Price float64 `bson:"price" json:"price" validate:"gte=0"`
	Stock int     `bson:"stock" json:"stock" validate:"gte=0"`
}

type Product struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description" json:"description"`
	Price       float64             `bson:"price" json:"price"`
	Stock       int                 `bson:"stock" json:"stock"`
	Category    primitive.ObjectID  `bson:"category" json:"category"`
	Sizes       []SizeVariant       `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Images      []string            `bson:"images" json:"images"`
	OfferID     *primitive.ObjectID `bson:"offerId,omitempty" json:"offerId,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ProductSummary is the slice of a product embedded into populated orders.
type ProductSummary struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Price  float64            `json:"price"`
	Images []string           `json:"images"`
}

// ProductDetail is a product with its category and offer references expanded.
// Images hold fetchable URLs rather than storage keys.
type ProductDetail struct {
	Product
	Category *Category `json:"category"`
	Offer    *Offer    `json:"offer,omitempty"`
}

type ProductInput struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Price       float64       `json:"price" validate:"gte=0"`
	Stock       int           `json:"stock" validate:"gte=0"`
	Category    string        `json:"category" validate:"required,mongodb"`
	OfferID     string        `json:"offerId" validate:"omitempty,mongodb"`
	Sizes       []SizeVariant `json:"sizes" validate:"dive"`
}

type ProductPatch struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0"`
	Stock       *int           `json:"stock" validate:"omitempty,gte=0"`
	Category    *string        `json:"category" validate:"omitempty,mongodb"`
	OfferID     *string        `json:"offerId" validate:"omitempty,objectid_or_empty"`
	Sizes       *[]SizeVariant `json:"sizes" validate:"omitempty,dive"`
	Images      *[]string      `json:"images"`
}
