package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
}

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Mobile     string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	DOB        time.Time          `bson:"dob" json:"dob"`
	Password   string             `bson:"password" json:"-"`
	GoogleID   string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	ProfilePic string             `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
	FCMToken   string             `bson:"fcmToken,omitempty" json:"-"`
	Addresses  []Address          `bson:"addresses" json:"addresses"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the slice of a user embedded into populated orders.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

type SignupInput struct {
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Mobile   string    `json:"mobile" validate:"required_without=Email"`
	Password string    `json:"password" validate:"required,min=6"`
	DOB      time.Time `json:"dob" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Name       *string    `json:"name"`
	Email      *string    `json:"email" validate:"omitempty,email"`
	Mobile     *string    `json:"mobile"`
	DOB        *time.Time `json:"dob"`
	Password   *string    `json:"password" validate:"omitempty,min=6"`
	GoogleID   *string    `json:"googleId"`
	ProfilePic *string    `json:"profilePic"`
	FCMToken   *string    `json:"fcmToken"`
}
