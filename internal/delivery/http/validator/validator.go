// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance; it is safe for concurrent use.
type Validator struct {
	validate *validatorv10.Validate
}

// New builds the echo validator backed by struct tags.
func New() *Validator {
	return &Validator{
		validate: validatorv10.New(validatorv10.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
