package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance. When nil (no Redis configured)
// blacklisting is disabled and every token check passes.
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a new Redis-backed token blacklist
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistToken adds an access token to the blacklist until its expiration
func BlacklistToken(tokenString string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	return TokenBlacklist.blacklistToken(tokenString)
}

func (tb *RedisTokenBlacklist) blacklistToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil && !strings.Contains(err.Error(), "token is expired") {
		return fmt.Errorf("failed to parse token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("failed to get claims from token")
	}

	var expirationTime time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expirationTime = time.Unix(int64(exp), 0)
	} else {
		expirationTime = time.Now().Add(24 * time.Hour)
	}

	ctx := context.Background()
	key := fmt.Sprintf("blacklist:access:%s", tokenString)

	if err := tb.Client.Set(ctx, key, "true", time.Until(expirationTime)).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token in Redis: %v", err)
	}

	return nil
}

// IsTokenBlacklisted checks if a token is in the blacklist
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}
	return TokenBlacklist.isTokenBlacklisted(tokenString)
}

func (tb *RedisTokenBlacklist) isTokenBlacklisted(tokenString string) bool {
	ctx := context.Background()
	key := fmt.Sprintf("blacklist:access:%s", tokenString)

	exists, err := tb.Client.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("Error checking token blacklist: %v", err)
		return false
	}

	return exists > 0
}

// IsConnected checks if the Redis connection is alive
func (tb *RedisTokenBlacklist) IsConnected() bool {
	if tb == nil || tb.Client == nil {
		return false
	}
	ctx := context.Background()
	return tb.Client.Ping(ctx).Err() == nil
}

// Close closes the Redis connection
func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}
