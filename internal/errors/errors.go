package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// StorageError wraps a database failure; callers surface it as a generic
// server error with the message string only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCategoryNotFound = &NotFoundError{Entity: "category"}
	ErrReminderNotFound = &NotFoundError{Entity: "reminder"}
)

// Business Logic Errors
var (
	ErrInvalidPeriod = errors.New("period month must be between 0 and 11")
	ErrInvalidPage   = errors.New("page must be a positive integer")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewStorageError wraps err with the failing operation name
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
