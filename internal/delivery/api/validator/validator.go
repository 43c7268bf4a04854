// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	domainerrors "identity/internal/domain/errors"
	"identity/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request DTOs by their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator that reports JSON field names.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator. Failures are returned as ErrValidationFailed
// with the offending fields listed in Details.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+": "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}
