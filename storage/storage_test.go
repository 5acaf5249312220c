package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRecompressProducesJPEG(t *testing.T) {
	out, err := Recompress(bytes.NewReader(pngBytes(t, 40, 30)))
	require.NoError(t, err)
	// JPEG SOI marker
	assert.Equal(t, []byte{0xFF, 0xD8}, out[:2])
}

func TestRecompressRejectsNonImage(t *testing.T) {
	_, err := Recompress(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "products/abc/2.jpg", ProductImageKey("abc", 2))
	assert.Equal(t, "ProfilePictures/u1_profile.jpg", ProfilePictureKey("u1"))
}

func TestPresignURL(t *testing.T) {
	store, err := NewS3Store(context.Background(), S3Options{
		Region:     "us-east-1",
		Bucket:     "media",
		Endpoint:   "http://localhost:9000",
		AccessKey:  "test",
		SecretKey:  "test",
		PresignTTL: time.Hour,
	})
	require.NoError(t, err)

	url, err := store.PresignURL(context.Background(), "products/abc/0.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/media/products/abc/0.jpg?"))
	assert.Contains(t, url, "X-Amz-Expires=3600")

	passthrough, err := store.PresignURL(context.Background(), "https://cdn.example.com/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.jpg", passthrough)
}

func TestNewS3StoreNeedsBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Options{Region: "us-east-1"})
	assert.Error(t, err)
}
