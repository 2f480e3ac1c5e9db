package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	UserID int      `json:"uid"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
type TokenService interface {
	// Issue signs a token for the user and roles, valid for the configured interval.
	Issue(userID int, roles []string) (string, error)

	// Verify checks signature, issuer, audience and expiry. It fails with
	// ErrExpiredToken for an expired token and ErrInvalidToken otherwise.
	Verify(token string) (*Claims, error)

	// ExpirationInterval returns the configured token lifetime.
	ExpirationInterval() time.Duration
}
