package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
	"storefront/models"
)

type stubAuth struct {
	user *models.User
	err  error
}

func (s stubAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token != "good" {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	return s.user, s.err
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(), CustomRecovery())
	r.GET("/t/:id", handlers...)
	return r
}

func do(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Name: "Asha"}
	r := newRouter(AuthMiddleware(stubAuth{user: user}), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c).Name+" "+c.GetString("userId"))
	})

	w := do(r, "/t/1", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Token required"}`, w.Body.String())

	w = do(r, "/t/1", "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")

	w = do(r, "/t/1", "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Asha "+user.ID.Hex(), w.Body.String())
}

func TestAuthMiddlewareStoreFailureIsOpaque(t *testing.T) {
	r := newRouter(AuthMiddleware(stubAuth{err: errors.New("mongo down")}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := do(r, "/t/1", "Bearer good")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal Server Error"}`, w.Body.String())
}

func TestValidateObjectID(t *testing.T) {
	r := newRouter(ValidateObjectID("id", "product"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, "/t/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Invalid product ID format"}`, w.Body.String())

	w = do(r, "/t/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	r := newRouter(func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	w := do(r, "/t/1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal Server Error"}`, w.Body.String())

	r = newRouter(func(c *gin.Context) { panic("unexpected") })
	w = do(r, "/t/1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal Server Error"}`, w.Body.String())
}

func TestRequireOwner(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Name: "Asha"}
	r := newRouter(AuthMiddleware(stubAuth{user: user}), RequireOwner("id"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := do(r, "/t/"+user.ID.Hex(), "Bearer good")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, "/t/"+primitive.NewObjectID().Hex(), "Bearer good")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Access denied"}`, w.Body.String())
}
