package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware converts panics into the generic 500 error body without
// leaking internals.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Recovered from panic: %v", err)
				TrackError("internal")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"message": "Internal server error"})
			}
		}()
		c.Next()
	}
}
