package dto

import (
	"time"

	"main/model"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"twoFactorCode,omitempty"`
}

type TwoFactorRequest struct {
	Code string `json:"code"`
}

// UserProfileResponse is the reduced projection returned by /get-user.
// The password hash never leaves the server.
type UserProfileResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedOn: user.CreatedOn,
	}
}
