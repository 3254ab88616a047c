package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator validates configuration values using go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	v := validator.New()

	// Register custom validation functions
	v.RegisterValidation("provider", validateProvider)

	return &Validator{
		validate: v,
	}
}

// Validate validates a complete configuration. The first failing field is
// reported as a ValidationError carrying the struct namespace.
func (v *Validator) Validate(config *Config) error {
	if err := v.validate.Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, e := range validationErrors {
				return ValidationError{
					Field:   e.Namespace(),
					Message: fmt.Sprintf("validation failed on tag '%s' with value '%v'", e.Tag(), e.Value()),
					Value:   e.Value(),
				}
			}
		}
		return err
	}

	return nil
}

// validateProvider validates API provider values
func validateProvider(fl validator.FieldLevel) bool {
	_, err := ParseProvider(fl.Field().String())
	return err == nil
}
