// Package apperrors defines the error taxonomy shared by all services:
// client input errors, not-found conditions, and everything else, which
// handlers report as an internal error with the detail redacted.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks lookups that matched no rows.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput marks client input that fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrItemNotFound marks a cart referencing a menu item that does not
	// exist. Returned before any write happens.
	ErrItemNotFound = errors.New("menu item not found")
)

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets ValidationError match ErrInvalidInput in errors.Is chains, so
// handlers need a single check for the 400 class.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
