package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the caller's account projection. The account is
// re-resolved by ID so a token outliving its account is rejected.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "Missing or invalid token.")
		return
	}

	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.Unauthorized(c, "User not found or unauthorized.")
			return
		}
		utils.InternalError(c, "Server error fetching user info.", err)
		return
	}

	utils.Success(c, "User info retrieved successfully.", gin.H{
		"user": dto.ToUserProfileResponse(user),
	})
}
