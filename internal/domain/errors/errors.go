// Package errors defines the dashboard's application error taxonomy. Every
// failure that crosses a layer boundary is an AppError so the delivery layer
// can map it onto a status code and envelope without inspecting strings.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrSessionExpired marks a 401 from the platform API. The session store
	// has already been purged by the time callers see it; the only recovery
	// is a fresh login.
	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Sign in to access the dashboard",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"The platform API is unavailable, try again later",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UpstreamError represents a non-2xx platform API response that is not a
// session expiry, implementing the AppError interface.
type UpstreamError struct {
	status  int
	message string
}

// NewUpstreamError creates an error for a failed platform API call. The
// message is the server-provided one when available.
func NewUpstreamError(status int, message string) AppError {
	if message == "" {
		message = http.StatusText(status)
	}

	return &UpstreamError{status: status, message: message}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	switch {
	case e.status == http.StatusForbidden:
		return "FORBIDDEN"
	case e.status == http.StatusNotFound:
		return "NOT_FOUND"
	case e.status >= http.StatusInternalServerError:
		return "UPSTREAM_ERROR"
	}

	return "REQUEST_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return ""
}

// FieldErrors is a validation failure with per-field messages, used by the
// banner form and the filter structs. It never reaches the network.
type FieldErrors struct {
	Fields map[string]string
}

// NewFieldErrors builds a FieldErrors from a field→message map.
func NewFieldErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{Fields: fields}
}

// Error implements the error interface
func (e *FieldErrors) Error() string {
	return "validation failed"
}

// HTTPCode returns the HTTP status code
func (e *FieldErrors) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldErrors) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldErrors) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *FieldErrors) Details() string {
	out := ""
	for field, msg := range e.Fields {
		if out != "" {
			out += "; "
		}
		out += field + ": " + msg
	}

	return out
}
