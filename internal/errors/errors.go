package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of acquisition error.
type ErrorCode string

const (
	// ErrCodeUnknownEnvironment indicates the environment label matched no
	// recognized tier or policy row.
	ErrCodeUnknownEnvironment ErrorCode = "unknown_environment"
	// ErrCodeCredentialNotFound indicates no catalog entry exists for the
	// environment and user class.
	ErrCodeCredentialNotFound ErrorCode = "credential_not_found"
	// ErrCodeAuth indicates the identity provider rejected the credentials
	// or returned an unusable response.
	ErrCodeAuth ErrorCode = "auth"
	// ErrCodeParse indicates a malformed pasted token header.
	ErrCodeParse ErrorCode = "parse"
	// ErrCodeValidation indicates invalid configuration or input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates a wiring or infrastructure failure.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError is a structured error with a code, message, and optional cause.
// It supports wrapping and unwrapping for use with errors.Is and errors.As.
// Messages carry enough identifying context (environment, user class, parse
// reason) to diagnose a failure without inspecting catalog contents, which
// may contain secrets.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Reason is a stable machine-readable detail (optional, for parse errors)
	Reason string
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

// UnknownEnvironment creates a new UnknownEnvironment error.
func UnknownEnvironment(message string) *AppError {
	return &AppError{Code: ErrCodeUnknownEnvironment, Message: message}
}

// UnknownEnvironmentf creates a new UnknownEnvironment error with formatted message.
func UnknownEnvironmentf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeUnknownEnvironment, Message: fmt.Sprintf(format, args...)}
}

// CredentialNotFound creates a new CredentialNotFound error.
func CredentialNotFound(message string) *AppError {
	return &AppError{Code: ErrCodeCredentialNotFound, Message: message}
}

// CredentialNotFoundf creates a new CredentialNotFound error with formatted message.
func CredentialNotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeCredentialNotFound, Message: fmt.Sprintf(format, args...)}
}

// Auth creates a new Auth error.
func Auth(message string) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message}
}

// Authf creates a new Auth error with formatted message.
func Authf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: fmt.Sprintf(format, args...)}
}

// Parse creates a new Parse error with a stable reason detail.
func Parse(reason, message string) *AppError {
	return &AppError{Code: ErrCodeParse, Message: message, Reason: reason}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
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

// IsUnknownEnvironment checks if an error is an UnknownEnvironment error.
func IsUnknownEnvironment(err error) bool {
	return isCode(err, ErrCodeUnknownEnvironment)
}

// IsCredentialNotFound checks if an error is a CredentialNotFound error.
func IsCredentialNotFound(err error) bool {
	return isCode(err, ErrCodeCredentialNotFound)
}

// IsAuth checks if an error is an Auth error.
func IsAuth(err error) bool {
	return isCode(err, ErrCodeAuth)
}

// IsParse checks if an error is a Parse error.
func IsParse(err error) bool {
	return isCode(err, ErrCodeParse)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetReason returns the Reason from an error, or empty string if not an
// AppError or no reason set.
func GetReason(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}
