package utils

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
)

// ParseObjectID converts hex into an id, reporting "Invalid <label> ID format"
// on malformed input.
func ParseObjectID(hex, label string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.Wrap(apperr.KindValidation, "Invalid "+label+" ID format", err)
	}
	return id, nil
}
