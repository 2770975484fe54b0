// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents one registered user of the service.
type Account struct {
	ID           uuid.UUID // Store-assigned unique identifier, immutable after creation.
	Name         string    // Optional display name.
	Email        string    // Unique identity key, matched exactly (no normalization), immutable.
	PhoneNumber  string    // Optional contact number.
	PasswordHash string    // bcrypt verifier. Never serialized into any external response.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
