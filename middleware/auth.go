package middleware

import (
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes. A request carrying a missing,
// malformed, expired, revoked or otherwise invalid bearer token is
// rejected with 401 before any handler logic runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Missing or invalid token.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if services.IsTokenBlacklisted(tokenString) {
			utils.Unauthorized(c, "Token has been invalidated.")
			c.Abort()
			return
		}

		userID, err := services.ParseToken(tokenString)
		if err != nil {
			utils.TrackError("auth", "invalid_token")
			utils.Unauthorized(c, "Invalid or expired token.")
			c.Abort()
			return
		}

		// Expose caller identity and raw token to handlers
		c.Set("user_id", userID)
		c.Set("access_token", tokenString)

		c.Next()
	}
}
