package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrValidation marks caller-supplied data that violates a field constraint.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a record that does not exist or is not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable marks a failed or timed out call to the record store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError lists the violated fields with a machine-readable code each.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, code string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: code}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
