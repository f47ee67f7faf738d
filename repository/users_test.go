package repository

import (
	"context"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
)

func TestUserRepo(t *testing.T) {
	client := newTestMongoClient(t)
	ctx := context.Background()

	repo := &UserRepo{
		MongoCollection: client.Database(testDBName).Collection("users"),
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		FullName:  "Alice Example",
		Email:     "alice@example.com",
		Password:  "salt$hash",
		CreatedOn: time.Now(),
	}

	t.Run("AddUser", func(t *testing.T) {
		if err := repo.AddUser(ctx, user); err != nil {
			t.Fatalf("AddUser failed: %v", err)
		}
	})

	t.Run("AddUserRequiresIDAndEmail", func(t *testing.T) {
		if err := repo.AddUser(ctx, &model.User{FullName: "No ID"}); err == nil {
			t.Error("expected error for user without ID and email")
		}
	})

	t.Run("FindUserByEmail", func(t *testing.T) {
		found, err := repo.FindUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("FindUserByEmail failed: %v", err)
		}
		if found == nil || found.UserID != user.UserID {
			t.Fatalf("unexpected user: %+v", found)
		}

		missing, err := repo.FindUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("FindUserByEmail failed: %v", err)
		}
		if missing != nil {
			t.Errorf("expected nil for unknown email, got %+v", missing)
		}
	})

	t.Run("FindUser", func(t *testing.T) {
		found, err := repo.FindUser(ctx, user.UserID)
		if err != nil {
			t.Fatalf("FindUser failed: %v", err)
		}
		if found == nil || found.Email != user.Email {
			t.Fatalf("unexpected user: %+v", found)
		}

		missing, err := repo.FindUser(ctx, uuid.New().String())
		if err != nil {
			t.Fatalf("FindUser failed: %v", err)
		}
		if missing != nil {
			t.Errorf("expected nil for unknown ID, got %+v", missing)
		}
	})

	t.Run("TwoFactorLifecycle", func(t *testing.T) {
		if err := repo.SetTwoFactorSecret(ctx, user.UserID, "SECRET"); err != nil {
			t.Fatalf("SetTwoFactorSecret failed: %v", err)
		}

		found, _ := repo.FindUser(ctx, user.UserID)
		if found.TwoFactorSecret != "SECRET" || found.TwoFactorEnabled {
			t.Fatalf("secret should be pending: %+v", found)
		}

		if err := repo.EnableTwoFactor(ctx, user.UserID); err != nil {
			t.Fatalf("EnableTwoFactor failed: %v", err)
		}

		found, _ = repo.FindUser(ctx, user.UserID)
		if !found.TwoFactorEnabled {
			t.Error("two-factor should be enabled")
		}

		if err := repo.EnableTwoFactor(ctx, uuid.New().String()); err == nil {
			t.Error("expected error for unknown user")
		}
	})
}
