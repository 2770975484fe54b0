// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetRequestInput defines the data required to request a password reset.
type ResetRequestInput struct {
	Email string
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login. The account
// is included so the delivery layer can shape its public fields; the password
// hash never crosses the transport boundary.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RequestPasswordReset(ctx context.Context, input *ResetRequestInput) error
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
