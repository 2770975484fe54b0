package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an auth token.
type Claims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed, time-bounded token asserting the account identity.
	GenerateToken(accountID uuid.UUID) (string, error)

	// ValidateToken checks a token's signature and expiry and returns its claims.
	// Verification is pure computation; no store lookup is involved.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured token lifetime.
	GetTokenDuration() time.Duration
}
