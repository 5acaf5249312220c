package utils

import (
	"github.com/gin-gonic/gin"

	"storefront/apperr"
)

// Envelope is the body of every successful response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorEnvelope{Status: "error", Message: message})
}

// RespondError writes err as an error envelope. Internal errors are logged
// through the gin context and reported with an opaque message.
func RespondError(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		_ = c.Error(err)
	}
	Error(c, apperr.HTTPStatus(err), apperr.Message(err))
}
