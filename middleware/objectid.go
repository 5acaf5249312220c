package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/utils"
)

// ValidateObjectID rejects requests whose path parameter is not a hex ObjectID.
func ValidateObjectID(param, label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !primitive.IsValidObjectID(c.Param(param)) {
			utils.Error(c, http.StatusBadRequest, "Invalid "+label+" ID format")
			return
		}
		c.Next()
	}
}
