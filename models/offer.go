package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Offer struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name               string               `bson:"name" json:"name"`
	DiscountPercentage float64              `bson:"discountPercentage" json:"discountPercentage"`
	StartDate          time.Time            `bson:"startDate" json:"startDate"`
	EndDate            time.Time            `bson:"endDate" json:"endDate"`
	Products           []primitive.ObjectID `bson:"products" json:"products"`
}

// OfferDetail is an offer with its product references expanded.
type OfferDetail struct {
	Offer
	Products []Product `json:"products"`
}

type OfferInput struct {
	Name               string    `json:"name" validate:"required"`
	DiscountPercentage float64   `json:"discountPercentage" validate:"gte=0,lte=100"`
	StartDate          time.Time `json:"startDate" validate:"required"`
	EndDate            time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	Products           []string  `json:"products" validate:"dive,mongodb"`
}

type OfferPatch struct {
	Name               *string    `json:"name" validate:"omitempty,min=1"`
	DiscountPercentage *float64   `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Products           *[]string  `json:"products" validate:"omitempty,dive,mongodb"`
}
