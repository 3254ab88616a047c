package aisdk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is wrapped by every construction error in this package.
// Use errors.Is(err, ErrValidation) to tell bad input apart from transport failures.
var ErrValidation = errors.New("validation failed")

// InvalidRoleError is returned when a message role is outside the allowed set.
type InvalidRoleError struct {
	Role string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role %q, must be one of %s", e.Role, strings.Join(roleNames(), ", "))
}

func (e *InvalidRoleError) Unwrap() error { return ErrValidation }

// UnexpectedFieldError is returned when a message carries a key other than role or content.
// The whole message is rejected, the field is never silently dropped.
type UnexpectedFieldError struct {
	Field string
}

func (e *UnexpectedFieldError) Error() string {
	return fmt.Sprintf("unexpected field %q in message", e.Field)
}

func (e *UnexpectedFieldError) Unwrap() error { return ErrValidation }

// MissingFieldError is returned when a parsed message lacks role or content.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q in message", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrValidation }

// NullFieldError is returned when role or content is present but null.
type NullFieldError struct {
	Field string
}

func (e *NullFieldError) Error() string {
	return fmt.Sprintf("field %q in message must be a string, got null", e.Field)
}

func (e *NullFieldError) Unwrap() error { return ErrValidation }

// SchemaShapeError is returned when a parameter schema cannot be turned into a tool spec.
type SchemaShapeError struct {
	Schema string
	Reason string
}

func (e *SchemaShapeError) Error() string {
	if e.Schema != "" {
		return fmt.Sprintf("malformed tool schema %q: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("malformed tool schema: %s", e.Reason)
}

func (e *SchemaShapeError) Unwrap() error { return ErrValidation }
