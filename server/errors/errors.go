package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying an HTTP status and context.
type AppError struct {
	Code    int    `json:"status_code"` // HTTP status code
	Message string `json:"message"`     // message shown to the user
	Err     error  `json:"-"`           // internal error for logs, never serialized
	Context string `json:"-"`           // extra context (function, parameters)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code.
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage returns the message safe to show to the user.
func (e *AppError) UserMessage() string {
	return e.Message
}

// GetContext returns the error context.
func (e *AppError) GetContext() string {
	return e.Context
}

// WithContext attaches context to the error.
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewNotFoundError creates a 404 Not Found error.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a 400 Bad Request error.
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewConflictError creates a 409 Conflict error.
func NewConflictError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
		Err:     err,
	}
}

// NewFileProcessingError creates a 422 Unprocessable Entity error for
// uploads that were received but could not be processed.
func NewFileProcessingError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Err:     err,
	}
}

// NewRateLimitError creates a 429 Too Many Requests error.
func NewRateLimitError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusTooManyRequests,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a 500 Internal Server Error.
// The user sees a generic message; details go to the logs only.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     errors.Join(errors.New(message), err),
	}
}

// NewDatabaseError creates a 500 error for storage failures.
// The user sees a generic message; details go to the logs only.
func NewDatabaseError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "A storage error occurred",
		Err:     errors.Join(errors.New(message), err),
	}
}

// NewServiceUnavailableError creates a 503 Service Unavailable error.
func NewServiceUnavailableError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: message,
		Err:     err,
	}
}

// WrapError wraps an existing error with context.
// An AppError keeps its status code; anything else becomes an
// internal error.
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}
