package application

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the service matches exactly one
// of these with errors.Is.
var (
	// ErrValidation covers missing required fields and malformed values
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means the targeted application no longer exists
	ErrNotFound = errors.New("application not found")

	// ErrStorage wraps failures of the underlying database
	ErrStorage = errors.New("storage error")
)

// Validation errors
var (
	ErrEmptyJobName    = fmt.Errorf("%w: job name is required", ErrValidation)
	ErrEmptyCompany    = fmt.Errorf("%w: company is required", ErrValidation)
	ErrEmptyDate       = fmt.Errorf("%w: date applied is required", ErrValidation)
	ErrInvalidDate     = fmt.Errorf("%w: date must use YYYY-MM-DD format", ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)
)

// storageError keeps the driver's message while matching ErrStorage
type storageError struct {
	op  string
	err error
}

func (e *storageError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *storageError) Unwrap() []error {
	return []error{ErrStorage, e.err}
}

func wrapStorage(op string, err error) error {
	return &storageError{op: op, err: err}
}
