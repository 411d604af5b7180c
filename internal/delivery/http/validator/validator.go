// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "hrcore/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator validates request DTOs by their `validate` struct tags.
type EchoValidator struct {
	validate *playground.Validate
}

// New builds the validator echo will call for every Bind target.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Tag violations surface as the shared
// validation error so the error handler renders a consistent 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
