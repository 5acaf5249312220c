package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/apperr"
	"storefront/models"
	"storefront/utils"
)

const currentUserKey = "currentUser"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware requires a bearer token and loads its user fresh on every
// request, so deleted users lose access immediately.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			utils.Error(c, http.StatusUnauthorized, "Token required")
			return
		}
		tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := auth.Authenticate(ctx, tokenString)
		if err != nil {
			if apperr.KindOf(err) != apperr.KindUnauthorized {
				utils.RespondError(c, err)
				return
			}
			utils.Error(c, http.StatusUnauthorized, apperr.Message(err))
			return
		}

		c.Set(currentUserKey, user)
		c.Set("userId", user.ID.Hex())
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware, or nil on public routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// RequireOwner lets a request through only when the path parameter names the
// authenticated user. It runs after AuthMiddleware.
func RequireOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.ID.Hex() != c.Param(param) {
			utils.RespondError(c, apperr.Forbidden("Access denied"))
			return
		}
		c.Next()
	}
}
