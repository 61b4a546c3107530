package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the actor lacks the capability for the requested operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidState indicates that the requested transition is not valid from the current status.
var ErrInvalidState = errors.New("invalid state for requested transition")

// ErrConflict indicates that a versioned write lost against a concurrent writer.
// Repositories return it; services resolve it by re-reading.
var ErrConflict = errors.New("concurrent modification")

// AppError carries a status code and a message next to the wrapped cause.
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

// NewAppError builds an AppError. Code 500 is used for infrastructure failures.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing entity of the given kind.
func NewNotFoundError(entity string, id string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
		Err:     ErrNotFound,
	}
}

// NewValidationFailedError reports malformed or missing input.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewForbiddenError reports a capability failure.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewInvalidStateError reports a transition attempted from the wrong status.
func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrInvalidState}
}

// IsDomainError reports whether err belongs to the caller-facing taxonomy.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrDuplicate)
}
