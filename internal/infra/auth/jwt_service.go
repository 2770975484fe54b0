// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"beacon/config"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
)

const (
	// insecureDefaultSecret mirrors the historical fallback. Integrators are
	// expected to set SecretKey; the constructor logs a warning otherwise.
	insecureDefaultSecret = "defaultsecret"

	defaultTokenTTL = time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Process-wide signing key, loaded once at startup.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService. The signing secret is a
// configuration contract: an empty value falls back to an insecure default
// so local setups keep working, but the fallback is never silent.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.SecretKey
	if secret == "" {
		secret = insecureDefaultSecret
		logger.Warn("SECRETKEY is not set, signing tokens with an insecure default; set it before any real deployment")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed token bound to the given account ID.
func (s *jwtService) GenerateToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the token's signature and expiry and extracts the
// asserted account identity. Failures map onto the domain token errors so
// callers never inspect jwt library errors directly.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected claims type")
	}

	accountID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("subject is not an account id")
	}

	return &service.Claims{
		AccountID:        accountID,
		RegisteredClaims: *registered,
	}, nil
}

// GetTokenDuration returns the configured token lifetime.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.ttl
}
