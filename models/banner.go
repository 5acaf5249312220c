package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Banner struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title     string              `bson:"title" json:"title"`
	Image     string              `bson:"image" json:"image"`
	Link      *primitive.ObjectID `bson:"link,omitempty" json:"link,omitempty"`
	IsActive  bool                `bson:"isActive" json:"isActive"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// BannerDetail is a banner with its linked offer expanded.
type BannerDetail struct {
	Banner
	Link *Offer `json:"link"`
}

type BannerInput struct {
	Title    string `json:"title" validate:"required"`
	Image    string `json:"image"`
	Link     string `json:"link" validate:"omitempty,mongodb"`
	IsActive *bool  `json:"isActive"`
}

type BannerPatch struct {
	Title    *string `json:"title"`
	Image    *string `json:"image"`
	Link     *string `json:"link" validate:"omitempty,objectid_or_empty"`
	IsActive *bool   `json:"isActive"`
}
