package handler

import (
	"errors"

	"main/dto"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService *usecase.UserService
}

func NewAuthHandler(userService *usecase.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

// Register creates an account and issues an access token right away,
// so the caller is authenticated without a separate login round trip.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Request body is required.")
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.TrackAuthAttempt("failure", "register")
			utils.BadRequest(c, vErr.Reason)
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.TrackAuthAttempt("failure", "register")
			utils.Conflict(c, "A user with this email already exists.")
		default:
			utils.TrackError("auth", "registration_failed")
			utils.InternalError(c, "Server error during registration.", err)
		}
		return
	}

	accessToken, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Server error during registration.", err)
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, "Registration successful.", gin.H{
		"user":        user,
		"accessToken": accessToken,
	})
}
