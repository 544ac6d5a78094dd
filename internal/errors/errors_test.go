package errors

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "42")

	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.EqualError(t, err, "not_found: task not found: 42")

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "task", resource)
}

func TestNewDatabaseError_WrapsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewDatabaseError("insert task", cause)

	assert.True(t, err.IsType(ErrorTypeDatabase))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "caused by: disk full")
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("choice", "9", "unknown menu option")

	assert.True(t, err.IsType(ErrorTypeInvalidInput))
	assert.Contains(t, err.Error(), "invalid input for choice")
}

func TestNewTimeoutError_WrapsCause(t *testing.T) {
	err := NewTimeoutError("query tasks", context.DeadlineExceeded)

	assert.True(t, err.IsType(ErrorTypeTimeout))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.EqualError(t, err, "timeout: operation timed out: query tasks (caused by: context deadline exceeded)")
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(NewTimeoutError("query", nil))
	require.True(t, ok)
	assert.True(t, appErr.IsType(ErrorTypeTimeout))

	_, ok = AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	err := NewNotFoundError("task", "1")

	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(err, ErrorTypeDatabase))
	assert.False(t, IsErrorType(stderrors.New("plain"), ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "should pass through not found message",
			err:      NewNotFoundError("task", "3"),
			expected: "task not found: 3",
		},
		{
			name:     "should sanitize database errors",
			err:      NewDatabaseError("insert", stderrors.New("constraint violated")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "should sanitize timeout errors",
			err:      NewTimeoutError("query", context.DeadlineExceeded),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "should use Error() for plain errors",
			err:      stderrors.New("plain failure"),
			expected: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := stderrors.New("root cause")

	err := WrapError(cause, ErrorTypeDatabase, "saving task")

	assert.True(t, err.IsType(ErrorTypeDatabase))
	assert.Equal(t, "database", err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestAppError_Is(t *testing.T) {
	a := NewNotFoundError("task", "1")
	b := NewNotFoundError("task", "2")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, NewDatabaseError("op", nil))
}
