package llm

import "errors"

// ErrorType represents the category of error.
type ErrorType string

const (
	// ErrorTypeConfig covers setup mistakes: unresolvable providers,
	// unregistered constructors, bad adapter options. Always surfaced to the
	// caller immediately.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeValidation covers precondition failures such as missing
	// template variables or node validation.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInvocation covers failures of the external provider call
	// (network, auth, rate limits). No retry is built in.
	ErrorTypeInvocation ErrorType = "invocation"
)

// Error is a provider-neutral categorized error.
type Error struct {
	Type    ErrorType
	Message string
	Err     error // underlying provider/SDK error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, err error) *Error {
	return &Error{Type: ErrorTypeConfig, Message: message, Err: err}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, err error) *Error {
	return &Error{Type: ErrorTypeValidation, Message: message, Err: err}
}

// NewInvocationError creates an invocation error.
func NewInvocationError(message string, err error) *Error {
	return &Error{Type: ErrorTypeInvocation, Message: message, Err: err}
}

func isErrorType(err error, t ErrorType) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == t
	}
	return false
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool { return isErrorType(err, ErrorTypeConfig) }

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool { return isErrorType(err, ErrorTypeValidation) }

// IsInvocationError checks if an error is an invocation error.
func IsInvocationError(err error) bool { return isErrorType(err, ErrorTypeInvocation) }
