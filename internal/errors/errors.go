package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrNoInput = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
)

// Kind categorizes errors
type Kind string

const (
	KindArgument        Kind = "argument"
	KindSyntax          Kind = "syntax"
	KindTrailingData    Kind = "trailing_data"
	KindNonSerializable Kind = "non_serializable"
	KindGeneration      Kind = "generation"
	KindInput           Kind = "input"
	KindOutput          Kind = "output"
	KindUnknown         Kind = "unknown"
)

// Error is an application-specific error with context
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *Error) Is(target error) bool {
	// Check if target is also an *Error and if the kinds match
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether err is (or wraps) an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// NewArgumentError creates a new error for an invalid argument passed to an
// entry point, detected before any work begins
func NewArgumentError(message string, err error) *Error {
	return &Error{
		Kind:    KindArgument,
		Message: message,
		Err:     err,
	}
}

// NewSyntaxError creates a new error for malformed JSON text
func NewSyntaxError(message string, err error) *Error {
	return &Error{
		Kind:    KindSyntax,
		Message: message,
		Err:     err,
	}
}

// NewTrailingDataError creates a new error for well-formed JSON followed by
// unexpected content
func NewTrailingDataError(message string, err error) *Error {
	return &Error{
		Kind:    KindTrailingData,
		Message: message,
		Err:     err,
	}
}

// NewNonSerializableError creates a new error for a value with no JSON
// representation
func NewNonSerializableError(message string, err error) *Error {
	return &Error{
		Kind:    KindNonSerializable,
		Message: message,
		Err:     err,
	}
}

// NewGenerationError creates a new error for a failed text-generation
// primitive
func NewGenerationError(message string, err error) *Error {
	return &Error{
		Kind:    KindGeneration,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *Error {
	return &Error{
		Kind:    KindInput,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing output
func NewOutputError(message string, err error) *Error {
	return &Error{
		Kind:    KindOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindArgument:
			return fmt.Sprintf("Argument error: %s", appErr.Message)
		case KindSyntax:
			return fmt.Sprintf("JSON syntax error: %s", appErr.Message)
		case KindTrailingData:
			return fmt.Sprintf("Trailing data error: %s", appErr.Message)
		case KindNonSerializable:
			return fmt.Sprintf("Serialization error: %s", appErr.Message)
		case KindGeneration:
			return fmt.Sprintf("Generation error: %s", appErr.Message)
		case KindInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case KindOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
