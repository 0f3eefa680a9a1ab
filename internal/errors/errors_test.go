package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "reminder"}
		assert.Equal(t, "reminder not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "reminder"}
		err2 := &NotFoundError{Entity: "reminder"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "reminder"}
		err2 := &NotFoundError{Entity: "category"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrReminderNotFound, ErrReminderNotFound))
		assert.False(t, errors.Is(ErrReminderNotFound, ErrCategoryNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrReminderNotFound))
		assert.True(t, IsNotFound(ErrCategoryNotFound))
		assert.False(t, IsNotFound(ErrInvalidPeriod))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get category: %w", ErrCategoryNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestStorageError(t *testing.T) {
	t.Run("Error message includes operation and cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewStorageError("list payments", cause)
		assert.Equal(t, "storage operation list payments failed: connection refused", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewStorageError("list payments", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("not confused with NotFoundError", func(t *testing.T) {
		err := NewStorageError("get category", errors.New("disk I/O error"))
		assert.False(t, IsNotFound(err))
	})
}
