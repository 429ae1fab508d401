package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *Error
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &Error{
				Kind:    KindSyntax,
				Message: "invalid JSON",
				Err:     errors.New("unexpected character"),
			},
			expected: "syntax: invalid JSON: unexpected character",
		},
		{
			name: "error without wrapped error",
			appError: &Error{
				Kind:    KindTrailingData,
				Message: "unexpected content after top-level value",
				Err:     nil,
			},
			expected: "trailing_data: unexpected content after top-level value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewSyntaxError("outer", inner)
	assert.Equal(t, inner, errors.Unwrap(err))
	assert.True(t, errors.Is(err, inner))
}

func TestError_Is(t *testing.T) {
	err := NewArgumentError("config must be an object", nil)

	assert.True(t, errors.Is(err, &Error{Kind: KindArgument}))
	assert.False(t, errors.Is(err, &Error{Kind: KindSyntax}))
	assert.False(t, errors.Is(err, errors.New("argument")))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"argument", NewArgumentError("m", nil), KindArgument},
		{"syntax", NewSyntaxError("m", nil), KindSyntax},
		{"trailing data", NewTrailingDataError("m", nil), KindTrailingData},
		{"non-serializable", NewNonSerializableError("m", nil), KindNonSerializable},
		{"generation", NewGenerationError("m", nil), KindGeneration},
		{"input", NewInputError("m", nil), KindInput},
		{"output", NewOutputError("m", nil), KindOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.True(t, IsKind(tt.err, tt.kind))
		})
	}
}

func TestIsKind(t *testing.T) {
	assert.False(t, IsKind(errors.New("plain"), KindSyntax))
	assert.False(t, IsKind(nil, KindSyntax))

	// Wrapped errors are still matched by kind.
	wrapped := NewInputError("reading stdin", NewSyntaxError("bad", nil))
	assert.True(t, IsKind(wrapped, KindInput))
}

func TestUserFriendlyError(t *testing.T) {
	assert.Equal(t,
		"JSON syntax error: bad input",
		UserFriendlyError(NewSyntaxError("bad input", nil)))
	assert.Equal(t,
		"Trailing data error: junk after value",
		UserFriendlyError(NewTrailingDataError("junk after value", nil)))
	assert.Equal(t,
		"Serialization error: opaque value",
		UserFriendlyError(NewNonSerializableError("opaque value", nil)))
	assert.Contains(t,
		UserFriendlyError(ErrNoInput),
		"No input provided")
	assert.Equal(t,
		"Error: boom",
		UserFriendlyError(errors.New("boom")))
}
