package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/utils"
)

// ErrorHandler logs errors attached to the context and answers with an
// opaque 500 when no handler has written a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, e.Err)
		}
		if !c.Writer.Written() {
			utils.Error(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		utils.Error(c, http.StatusInternalServerError, "Internal Server Error")
	})
}
