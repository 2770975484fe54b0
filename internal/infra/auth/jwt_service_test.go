package auth

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"beacon/config"
	domainerrors "beacon/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	return &jwtService{
		secret: []byte("test_secret_key_very_long_for_testing"),
		ttl:    time.Hour,
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestTokenService(t)
	accountID := uuid.New()

	token, err := svc.GenerateToken(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.GenerateToken(uuid.New())
	assert.NoError(t, err)

	// Flip a byte in the signature segment.
	idx := strings.LastIndex(token, ".") + 1
	tampered := token[:idx] + flipChar(token[idx:])

	claims, err := svc.ValidateToken(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)
	other := &jwtService{secret: []byte("a_different_secret_entirely"), ttl: time.Hour}

	token, err := svc.GenerateToken(uuid.New())
	assert.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: []byte("test_secret_key_very_long_for_testing"),
		ttl:    -time.Minute, // issue tokens that are already expired
	}

	token, err := svc.GenerateToken(uuid.New())
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InsecureDefaultWarning(t *testing.T) {
	var logOutput bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logOutput, nil))

	svc := NewJWTService(&config.Config{}, logger)
	assert.NotNil(t, svc)
	assert.Contains(t, logOutput.String(), "insecure default")

	// The fallback still issues verifiable tokens.
	accountID := uuid.New()
	token, err := svc.GenerateToken(accountID)
	assert.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
}

func TestJWTService_ConfiguredSecretNoWarning(t *testing.T) {
	var logOutput bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logOutput, nil))

	cfg := &config.Config{SecretKey: "configured_secret"}
	cfg.Auth = &config.AuthConfig{TokenTTL: 30 * time.Minute}

	svc := NewJWTService(cfg, logger)
	assert.Empty(t, logOutput.String())
	assert.Equal(t, 30*time.Minute, svc.GetTokenDuration())
}

func flipChar(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}

	return string(b)
}
