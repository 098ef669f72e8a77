package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a missing record and a record owned by
// another user, so handlers never leak existence across owners.
var ErrNotFound = errors.New("record not found")

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
