package app

import (
	"errors"
	"strings"
)

// ErrNotFound indicates the requested record does not exist for the calling
// user. Records owned by someone else surface as this same error.
var ErrNotFound = errors.New("not found")

// ValidationError carries field-level reasons a request was rejected, one
// message per field, in the order they were checked.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func validationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
