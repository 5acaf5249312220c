package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/apperr"
)

func TestSignupNeedsEmailOrMobile(t *testing.T) {
	in := SignupInput{Name: "Asha", Password: "secret1", DOB: time.Date(1995, 4, 2, 0, 0, 0, 0, time.UTC)}

	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "mobile is required", apperr.Message(err))

	in.Mobile = "9876543210"
	assert.NoError(t, Validate(in))
}

func TestSignupRejectsBadEmail(t *testing.T) {
	in := SignupInput{Name: "Asha", Email: "not-an-email", Password: "secret1", DOB: time.Now()}

	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email", apperr.Message(err))
}

func TestProductInputRejectsNegativePrice(t *testing.T) {
	in := ProductInput{
		Name:        "Kettle",
		Description: "1.5L steel",
		Price:       -1,
		Category:    "65f1c0a2b3c4d5e6f7a8b9c0",
	}

	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "price must be at least 0", apperr.Message(err))
}

func TestProductInputValidatesSizes(t *testing.T) {
	in := ProductInput{
		Name:        "Tee",
		Description: "Cotton",
		Price:       499,
		Category:    "65f1c0a2b3c4d5e6f7a8b9c0",
		Sizes:       []SizeVariant{{Label: "M", Price: 499, Stock: 3}, {Label: "", Price: 499}},
	}

	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "label is required", apperr.Message(err))
}

func TestOrderInputEnums(t *testing.T) {
	in := OrderInput{
		Items:  []OrderItemInput{{Product: "65f1c0a2b3c4d5e6f7a8b9c0", Quantity: 1, PriceAtPurchase: 10}},
		Status: "Lost",
	}

	err := Validate(in)
	require.Error(t, err)
	assert.Contains(t, apperr.Message(err), "status must be one of")

	in.Status = StatusShipped
	in.PaymentStatus = PaymentPaid
	assert.NoError(t, Validate(in))
}

func TestOrderInputNeedsItems(t *testing.T) {
	err := Validate(OrderInput{})
	require.Error(t, err)
	assert.Equal(t, "items is required", apperr.Message(err))
}

func TestOfferDates(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	in := OfferInput{Name: "Winter", DiscountPercentage: 20, StartDate: start, EndDate: start.Add(-time.Hour)}

	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "endDate must not be before StartDate", apperr.Message(err))
}

func TestPatchReferenceAcceptsEmptyToClear(t *testing.T) {
	assert.NoError(t, Validate(ProductPatch{OfferID: ptr("")}))
	assert.NoError(t, Validate(BannerPatch{Link: ptr("")}))
	assert.NoError(t, Validate(ProductPatch{OfferID: ptr("65f1c2a9e4b0a1b2c3d4e5f6")}))

	err := Validate(BannerPatch{Link: ptr("nope")})
	require.Error(t, err)
	assert.Equal(t, "link must be a valid id", apperr.Message(err))
}
