// Package apperrors defines the structured error taxonomy shared by the
// state core. Errors are local to the container that produced them and
// never bubble to unrelated containers.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates a malformed intent or parameter set.
	// These are programming errors: fail fast in development, log and
	// ignore in production.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeTransport indicates the network was unreachable or the
	// connection failed before a response arrived.
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeTimeout indicates a network operation exceeded its upper bound.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeUnauthorized indicates a 401 or expired credential token.
	// It forces logout and a transition to the unauthenticated region.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeServer indicates a non-auth 4xx/5xx platform response.
	ErrCodeServer ErrorCode = "server"
	// ErrCodePersistence indicates a durable-storage failure. Persistence
	// is best effort; these are logged and never propagated to the caller
	// of a state mutation.
	ErrCodePersistence ErrorCode = "persistence"
	// ErrCodeNotFound indicates a record was absent from storage.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports error wrapping and unwrapping for use
// with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Transport creates a new Transport error.
func Transport(message string) *AppError {
	return &AppError{Code: ErrCodeTransport, Message: message}
}

// Timeout creates a new Timeout error.
func Timeout(message string) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// Server creates a new Server error.
func Server(message string) *AppError {
	return &AppError{Code: ErrCodeServer, Message: message}
}

// Serverf creates a new Server error with formatted message.
func Serverf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeServer, Message: fmt.Sprintf(format, args...)}
}

// Persistence creates a new Persistence error.
func Persistence(message string) *AppError {
	return &AppError{Code: ErrCodePersistence, Message: message}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsTransport checks if an error is a Transport error.
func IsTransport(err error) bool { return isCode(err, ErrCodeTransport) }

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool { return isCode(err, ErrCodeTimeout) }

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool { return isCode(err, ErrCodeUnauthorized) }

// IsServer checks if an error is a Server error.
func IsServer(err error) bool { return isCode(err, ErrCodeServer) }

// IsPersistence checks if an error is a Persistence error.
func IsPersistence(err error) bool { return isCode(err, ErrCodePersistence) }

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// Message returns the classified message carried by err, or err.Error()
// when err is not an AppError.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// UserMessage returns the string a consuming view should render for err.
// Transport and timeout failures collapse to a single stable message so
// views do not leak dial/DNS details to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Code {
	case ErrCodeTransport, ErrCodeTimeout:
		return "Network error"
	case ErrCodeUnauthorized:
		return "Session expired"
	default:
		return appErr.Message
	}
}
