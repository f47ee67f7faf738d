package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 2 {
		t.Fatalf("expected salt$hash format, got %q", hash)
	}

	if hash == "password1" {
		t.Fatal("hash must not equal the plain password")
	}

	// Same password hashes differently thanks to the random salt
	hash2, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	tests := []struct {
		name     string
		stored   string
		provided string
		want     bool
		wantErr  bool
	}{
		{"correct password", hash, "password1", true, false},
		{"wrong password", hash, "wrong", false, false},
		{"case sensitive", hash, "Password1", false, false},
		{"malformed stored hash", "not-a-hash", "password1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.stored, tt.provided)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyPassword error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("VerifyPassword = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComparePasswords(t *testing.T) {
	hash, _ := HashPassword("secret$pass")
	if !ComparePasswords(hash, "secret$pass") {
		t.Error("expected match for correct password")
	}
	if ComparePasswords(hash, "other") {
		t.Error("expected mismatch for wrong password")
	}
	if ComparePasswords("garbage", "secret$pass") {
		t.Error("expected mismatch for malformed stored hash")
	}
}
