package utils

import (
	"log"
	"os"
)

// DefaultJWTExpirationSeconds is 600 hours, the validity window issued
// at registration and login.
const DefaultJWTExpirationSeconds = 600 * 60 * 60

var (
	JWTSecretKey      string
	JWTExpirationTime int64
)

func InitJWT() {
	// For tests, use default values if environment variables aren't set
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	JWTExpirationTime = GetEnvAsInt64("JWT_EXPIRATION_TIME", DefaultJWTExpirationSeconds)
}
