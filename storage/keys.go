package storage

import "fmt"

const ImageContentType = "image/jpeg"

// ProductImageKey is the object key of the n-th image of a product.
func ProductImageKey(productID string, n int) string {
	return fmt.Sprintf("products/%s/%d.jpg", productID, n)
}

// ProfilePictureKey is stable per user so a new upload replaces the old one.
func ProfilePictureKey(userID string) string {
	return fmt.Sprintf("ProfilePictures/%s_profile.jpg", userID)
}
