package controllers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
	"storefront/utils"
)

const (
	requestTimeout = 5 * time.Second
	uploadTimeout  = 30 * time.Second
)

func requestContext(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), d)
}

// pathID parses a path parameter that ValidateObjectID has already checked.
func pathID(c *gin.Context, param, label string) (primitive.ObjectID, bool) {
	id, err := utils.ParseObjectID(c.Param(param), label)
	if err != nil {
		utils.RespondError(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// uploadLimit rejects files above maxMB before anything is read from them.
type uploadLimit struct {
	maxMB int64
}

func (u uploadLimit) check(c *gin.Context, files ...*multipart.FileHeader) bool {
	for _, f := range files {
		if f.Size > u.maxMB<<20 {
			utils.RespondError(c, apperr.TooLarge(fmt.Sprintf("File size too large. Maximum size is %dMB", u.maxMB)))
			return false
		}
	}
	return true
}
