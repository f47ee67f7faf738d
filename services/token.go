package services

import (
	"errors"
	"fmt"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

const TokenIssuer = "notes-app"

// GenerateToken generates an access token for the user with their ID
// and the configured expiration time.
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     TokenIssuer,
		"iat":     now.Unix(),
		"exp":     expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// ParseToken validates a signed token and returns the user ID it carries.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	if iss, ok := claims["iss"].(string); ok && iss != TokenIssuer {
		return "", errors.New("invalid token issuer")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid user ID in token")
	}

	return userID, nil
}
