package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "name required",
			field:    "name",
			message:  "author must have a name",
			expected: "validation error on field 'name': author must have a name",
		},
		{
			name:     "category not allowed",
			field:    "category",
			message:  "post category must be either Fiction or Non-Fiction",
			expected: "validation error on field 'category': post category must be either Fiction or Non-Fiction",
		},
		{
			name:     "empty message",
			field:    "title",
			message:  "",
			expected: "validation error on field 'title': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_IsValidationFailed(t *testing.T) {
	err := &ValidationError{Field: "name", Code: CodeRequired, Message: "author must have a name"}

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, errors.New("validation failed")))

	wrapped := fmt.Errorf("create author: %w", err)
	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
}

func TestAsValidationError(t *testing.T) {
	base := &ValidationError{Field: "phone_number", Code: CodeInvalidFormat, Message: "bad"}

	ve, ok := AsValidationError(fmt.Errorf("update author: %w", base))
	require.True(t, ok)
	assert.Equal(t, "phone_number", ve.Field)
	assert.Equal(t, CodeInvalidFormat, ve.Code)

	_, ok = AsValidationError(errors.New("boom"))
	assert.False(t, ok)

	_, ok = AsValidationError(nil)
	assert.False(t, ok)
}

func TestErrValidationFailed_Message(t *testing.T) {
	assert.Equal(t, "validation failed", ErrValidationFailed.Error())
}
