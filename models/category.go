package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

type CategoryPatch struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Image *string `json:"image"`
	Link  *string `json:"link"`
}
