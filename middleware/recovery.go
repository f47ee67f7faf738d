package middleware

import (
	"log"
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware converts panics into the standard 500 envelope
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("http", "panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   true,
					"message": "Internal server error.",
				})
			}
		}()
		c.Next()
	}
}
