package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/apperr"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("65f1c0a2b3c4d5e6f7a8b9c0", "s3cret", time.Hour)
	require.NoError(t, err)

	userID, err := ParseToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "65f1c0a2b3c4d5e6f7a8b9c0", userID)
}

func TestParseTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	token, err := GenerateToken("u1", "s3cret", time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(token, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateToken("u1", "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenNeedsSecret(t *testing.T) {
	_, err := GenerateToken("u1", "", time.Hour)
	assert.Error(t, err)
}

func TestParseObjectID(t *testing.T) {
	_, err := ParseObjectID("xyz", "product")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))
	assert.Equal(t, "Invalid product ID format", apperr.Message(err))

	id, err := ParseObjectID("65f1c0a2b3c4d5e6f7a8b9c0", "product")
	require.NoError(t, err)
	assert.Equal(t, "65f1c0a2b3c4d5e6f7a8b9c0", id.Hex())
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.Len(t, c.Errors, 1)
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, "Category created successfully", gin.H{"name": "Shoes"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"Category created successfully","data":{"name":"Shoes"}}`, w.Body.String())
}
