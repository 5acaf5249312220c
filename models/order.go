package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

type OrderItem struct {
	Product         primitive.ObjectID `bson:"product" json:"product"`
	SizeLabel       string             `bson:"sizeLabel,omitempty" json:"sizeLabel,omitempty"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	PriceAtPurchase float64            `bson:"priceAtPurchase" json:"priceAtPurchase"`
}

type ShippingAddress struct {
	FullName     string `bson:"fullName" json:"fullName"`
	Mobile       string `bson:"mobile" json:"mobile"`
	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	PostalCode   string `bson:"postalCode" json:"postalCode"`
	Country      string `bson:"country" json:"country"`
}

type Order struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID          *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Items           []OrderItem         `bson:"items" json:"items"`
	TotalAmount     float64             `bson:"totalAmount" json:"totalAmount"`
	ShippingAddress ShippingAddress     `bson:"shippingAddress" json:"shippingAddress"`
	Status          string              `bson:"status" json:"status"`
	PaymentStatus   string              `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type OrderItemDetail struct {
	OrderItem
	Product *ProductSummary `json:"product"`
}

// OrderDetail is an order with its user and line-item products expanded.
type OrderDetail struct {
	Order
	User  *UserSummary      `json:"user,omitempty"`
	Items []OrderItemDetail `json:"items"`
}

type OrderItemInput struct {
	Product         string  `json:"product" validate:"required,mongodb"`
	SizeLabel       string  `json:"sizeLabel"`
	Quantity        int     `json:"quantity" validate:"required,gt=0"`
	PriceAtPurchase float64 `json:"priceAtPurchase" validate:"gte=0"`
}

type OrderInput struct {
	UserID          string           `json:"userId" validate:"omitempty,mongodb"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	TotalAmount     float64          `json:"totalAmount" validate:"gte=0"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	Status          string           `json:"status" validate:"omitempty,oneof=Pending Processing Shipped Delivered Cancelled"`
	PaymentStatus   string           `json:"paymentStatus" validate:"omitempty,oneof=Pending Paid Failed"`
}

// OrderPatch is a partial order update. Status is free-form here: unknown
// labels are stored as given.
type OrderPatch struct {
	Status          *string          `json:"status"`
	PaymentStatus   *string          `json:"paymentStatus"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
	TotalAmount     *float64         `json:"totalAmount" validate:"omitempty,gte=0"`
}
