package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the HTTP status an error should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// DuplicateName signals a registration conflict on the unique user name.
func DuplicateName(name string) *AppError {
	return NewAppError(http.StatusConflict, fmt.Sprintf("name %q is already taken", name), nil)
}

// InvalidInput signals an empty or malformed field. The whole submission
// is rejected, nothing is partially applied.
func InvalidInput(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// Unauthorized signals an authenticated caller acting on a resource they
// do not own.
func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

// Internal wraps a store-level fault. Nothing is committed when one of
// these propagates.
func Internal(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// Code extracts the HTTP status from err, defaulting to 500.
func Code(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
