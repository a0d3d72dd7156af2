// Package errors provides custom error types for the catalog API.
// Service and engine errors use AppError so responses stay consistent
// and never leak internal details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target carries the same error code, so wrapped copies
// still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// From returns the AppError carried by err. Errors without one resolve to
// ErrInternalServer and ok is false, so their details never reach a client.
func From(err error) (appErr *AppError, ok bool) {
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return ErrInternalServer, false
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Catalog errors.
var (
	// ErrDataIntegrity marks a fixture record whose foreign key resolves to nothing.
	ErrDataIntegrity = &AppError{Code: "DATA_INTEGRITY", Message: "Fixture data references a missing record", StatusCode: http.StatusInternalServerError}
	ErrUnknownAction = &AppError{Code: "UNKNOWN_ACTION", Message: "Unsupported action type", StatusCode: http.StatusBadRequest}
	ErrInvalidSort   = &AppError{Code: "INVALID_SORT", Message: "Unsupported sort key or direction", StatusCode: http.StatusBadRequest}
)

// Session errors.
var (
	ErrSessionNotFound = &AppError{Code: "SESSION_NOT_FOUND", Message: "Browsing session not found", StatusCode: http.StatusNotFound}
)
