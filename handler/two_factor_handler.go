package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// EnableTwoFactor generates a TOTP secret for the caller. The secret
// stays pending until a code is confirmed via VerifyTwoFactor.
func (h *AuthHandler) EnableTwoFactor(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.Unauthorized(c, "User not found or unauthorized.")
			return
		}
		utils.InternalError(c, "Server error enabling two-factor auth.", err)
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor auth is already enabled.")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "notes-app",
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalError(c, "Server error enabling two-factor auth.", err)
		return
	}

	if err := h.UserService.UsersRepo.SetTwoFactorSecret(c.Request.Context(), userID, key.Secret()); err != nil {
		utils.InternalError(c, "Server error enabling two-factor auth.", err)
		return
	}

	utils.Success(c, "Two-factor secret generated. Confirm a code to enable.", gin.H{
		"secret":     key.Secret(),
		"otpauthUrl": key.URL(),
	})
}

// VerifyTwoFactor confirms a TOTP code against the pending secret and
// turns two-factor enforcement on for the account.
func (h *AuthHandler) VerifyTwoFactor(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.TwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		utils.BadRequest(c, "Code is required.")
		return
	}

	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.Unauthorized(c, "User not found or unauthorized.")
			return
		}
		utils.InternalError(c, "Server error verifying two-factor auth.", err)
		return
	}

	if user.TwoFactorSecret == "" {
		utils.BadRequest(c, "No pending two-factor secret. Enable two-factor auth first.")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.TrackAuthAttempt("failure", "2fa")
		utils.Unauthorized(c, "Invalid two-factor code.")
		return
	}

	if err := h.UserService.UsersRepo.EnableTwoFactor(c.Request.Context(), userID); err != nil {
		utils.InternalError(c, "Server error verifying two-factor auth.", err)
		return
	}

	utils.TrackAuthAttempt("success", "2fa")
	utils.Success(c, "Two-factor auth enabled.", nil)
}
