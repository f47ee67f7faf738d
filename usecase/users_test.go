package usecase

import (
	"context"
	"errors"
	"testing"

	"main/dto"
)

func registerReq(fullName, email, password string) dto.RegisterRequest {
	return dto.RegisterRequest{FullName: fullName, Email: email, Password: password}
}

func TestRegisterValidation(t *testing.T) {
	svc := &UserService{}

	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		wantMsg  string
	}{
		{"missing full name", "", "a@x.com", "password1", "Full name is required."},
		{"missing email", "Alice", "", "password1", "Email is required."},
		{"invalid email", "Alice", "not-an-email", "password1", "Please enter a valid email address."},
		{"missing password", "Alice", "a@x.com", "", "Password is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), registerReq(tt.fullName, tt.email, tt.password))

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Reason != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, vErr.Reason)
			}
		})
	}
}

func TestAuthenticateValidation(t *testing.T) {
	svc := &UserService{}

	_, err := svc.Authenticate(context.Background(), "", "password1")
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Reason != "Email is required." {
		t.Errorf("expected email validation error, got %v", err)
	}

	_, err = svc.Authenticate(context.Background(), "a@x.com", "")
	if !errors.As(err, &vErr) || vErr.Reason != "Password is required." {
		t.Errorf("expected password validation error, got %v", err)
	}
}
