package usecase

import (
	"context"
	"errors"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrUserNotFound       = errors.New("no user found with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTwoFactorRequired  = errors.New("two-factor code required")
)

// ValidationError marks a bad-request failure whose message is shown
// to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationError(reason string) error {
	return &ValidationError{Reason: reason}
}

type UserService struct {
	UsersRepo *repository.UserRepo
}

// Register creates a new account and returns it. The password is
// stored as an argon2id hash, never as the raw value.
func (svc *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	if req.FullName == "" {
		return nil, validationError("Full name is required.")
	}
	if req.Email == "" {
		return nil, validationError("Email is required.")
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, validationError("Please enter a valid email address.")
	}
	if req.Password == "" {
		return nil, validationError("Password is required.")
	}

	existing, err := svc.UsersRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashed,
		CreatedOn: time.Now(),
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate resolves the account for an email/password pair.
// Password comparison runs against the stored argon2id hash.
func (svc *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, validationError("Email is required.")
	}
	if password == "" {
		return nil, validationError("Password is required.")
	}

	user, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !services.ComparePasswords(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetProfile re-resolves the account by ID so a token issued for a
// since-deleted account is rejected.
func (svc *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
