package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced id that does not exist. Handlers turn it
// into a 404; everything else surfaces as a 500.
var ErrNotFound = errors.New("not found")

// ValidationError is a rejected input with field-level detail. Handlers turn
// it into a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
