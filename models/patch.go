package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields methods translate a patch into the document fields to $set. Only
// non-nil patch fields appear in the result.

func (p UserPatch) Fields() bson.M {
	set := bson.M{}
	putString(set, "name", p.Name)
	putString(set, "email", p.Email)
	putString(set, "mobile", p.Mobile)
	putString(set, "password", p.Password)
	putString(set, "googleId", p.GoogleID)
	putString(set, "profilePic", p.ProfilePic)
	putString(set, "fcmToken", p.FCMToken)
	if p.DOB != nil {
		set["dob"] = *p.DOB
	}
	return set
}

func (p CategoryPatch) Fields() bson.M {
	set := bson.M{}
	putString(set, "name", p.Name)
	putString(set, "image", p.Image)
	putString(set, "link", p.Link)
	return set
}

func (p ProductPatch) Fields() (bson.M, error) {
	set := bson.M{}
	putString(set, "name", p.Name)
	putString(set, "description", p.Description)
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Stock != nil {
		set["stock"] = *p.Stock
	}
	if p.Sizes != nil {
		set["sizes"] = *p.Sizes
	}
	if p.Images != nil {
		set["images"] = *p.Images
	}
	if p.Category != nil {
		id, err := primitive.ObjectIDFromHex(*p.Category)
		if err != nil {
			return nil, err
		}
		set["category"] = id
	}
	if err := putRef(set, "offerId", p.OfferID); err != nil {
		return nil, err
	}
	return set, nil
}

func (p OfferPatch) Fields() (bson.M, error) {
	set := bson.M{}
	putString(set, "name", p.Name)
	if p.DiscountPercentage != nil {
		set["discountPercentage"] = *p.DiscountPercentage
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["endDate"] = *p.EndDate
	}
	if p.Products != nil {
		ids, err := ParseObjectIDs(*p.Products)
		if err != nil {
			return nil, err
		}
		set["products"] = ids
	}
	return set, nil
}

func (p BannerPatch) Fields() (bson.M, error) {
	set := bson.M{}
	putString(set, "title", p.Title)
	putString(set, "image", p.Image)
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if err := putRef(set, "link", p.Link); err != nil {
		return nil, err
	}
	return set, nil
}

func (p OrderPatch) Fields() bson.M {
	set := bson.M{}
	putString(set, "status", p.Status)
	putString(set, "paymentStatus", p.PaymentStatus)
	if p.ShippingAddress != nil {
		set["shippingAddress"] = *p.ShippingAddress
	}
	if p.TotalAmount != nil {
		set["totalAmount"] = *p.TotalAmount
	}
	return set
}

func putString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

// putRef stores an optional reference; an empty string clears it.
func putRef(set bson.M, key string, v *string) error {
	if v == nil {
		return nil
	}
	if *v == "" {
		set[key] = nil
		return nil
	}
	id, err := primitive.ObjectIDFromHex(*v)
	if err != nil {
		return err
	}
	set[key] = id
	return nil
}

func ParseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
