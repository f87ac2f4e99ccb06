package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// Tokens are stateless; nothing about an issued token is stored.
type TokenService interface {
	// Issue signs a new access token for the given identity.
	Issue(name, email, userID string) (string, error)

	// Verify checks signature and expiry and returns the decoded claims.
	Verify(tokenString string) (*Claims, error)
}
