package handler

import (
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// Logout revokes the presented token by adding it to the Redis
// blacklist until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := c.GetString("access_token")
	if tokenString == "" {
		utils.Unauthorized(c, "Missing or invalid token.")
		return
	}

	// Without a configured blacklist there is nothing to revoke on the
	// server side; the client discards its stored token either way.
	if services.TokenBlacklist == nil {
		utils.Success(c, "Logout successful.", nil)
		return
	}

	if err := services.BlacklistToken(tokenString); err != nil {
		utils.TrackError("auth", "logout_failed")
		utils.InternalError(c, "Server error during logout.", err)
		return
	}

	utils.Success(c, "Logout successful.", nil)
}
