package handler

import (
	"errors"
	"log"
	"time"

	"main/dto"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Login authenticates an email/password pair and issues an access
// token. Accounts with two-factor enabled must also present a valid
// TOTP code.
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		utils.HTTPRequestDuration.WithLabelValues("POST", "/login").
			Observe(time.Since(start).Seconds())
	}()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, "Request body is required.")
		return
	}

	user, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.TrackAuthAttempt("failure", "login")
			utils.BadRequest(c, vErr.Reason)
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.TrackAuthAttempt("failure", "login")
			utils.NotFound(c, "No user found with this email.")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.TrackAuthAttempt("failure", "login")
			utils.Unauthorized(c, "Invalid credentials. Please check your email and password.")
		default:
			utils.TrackError("auth", "login_failed")
			utils.InternalError(c, "Server error during login.", err)
		}
		return
	}

	if user.TwoFactorEnabled {
		if req.TwoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa")
			utils.Unauthorized(c, "Two-factor code required.")
			return
		}
		if !totp.Validate(req.TwoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "2fa")
			utils.Unauthorized(c, "Invalid two-factor code.")
			return
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	accessToken, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Server error during login.", err)
		return
	}

	log.Printf("Login for %s from %s", user.Email, utils.DescribeClient(c.Request.UserAgent()))
	utils.TrackAuthAttempt("success", "login")

	utils.Success(c, "Login successful.", gin.H{
		"email":       user.Email,
		"accessToken": accessToken,
	})
}
