package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrExperimentRunning is returned when a mutation requires the experiment
	// to be idle (pending or finished).
	ErrExperimentRunning = errors.New("experiment is running")
)

// ValidationError wraps field-specific validation errors (schema errors in
// the error taxonomy: surfaced as 400, nothing written).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ReferencedError rejects a dataset removal while experiments still point at
// it; Count carries the number of linked experiments.
type ReferencedError struct {
	Count int
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf(
		"this dataset is linked to %d experiments; delete them or point them at another dataset first",
		e.Count)
}
