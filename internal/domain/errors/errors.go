// Package errors defines the closed taxonomy of failures the API reports.
package errors

import (
	"net/http"

	"budget/internal/errors"
)

// Stable machine-readable error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Structured error details (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
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

// Details returns structured error information
func (e *BaseError) Details() any {
	return e.details
}

// WithMessage returns a copy of the error carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Generic taxonomy members
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Validation failed, check details for more information",
		nil,
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"You need to be signed in",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"You are not allowed to view this part of the application",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"The requested resource could not be found",
		nil,
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"Internal server error",
		nil,
	)

	// Authentication-related errors
	ErrInvalidCredentials = ErrUnauthorized.WithMessage("The given email and password do not match")
	ErrMissingToken       = ErrUnauthorized.WithMessage("You need to be signed in")
	ErrMalformedToken     = ErrUnauthorized.WithMessage("Invalid authentication token format, expected a Bearer token")
	ErrInvalidToken       = ErrUnauthorized.WithMessage("Invalid authentication token")
	ErrExpiredToken       = ErrUnauthorized.WithMessage("The token has expired")

	// Authorization-related errors
	ErrMissingRole = ErrForbidden.WithMessage("You are not allowed to view this part of the application")
	ErrNotOwner    = ErrForbidden.WithMessage("You are not allowed to view this user's information")

	// Resource-related errors
	ErrUserNotFound        = ErrNotFound.WithMessage("No user with this id exists")
	ErrPlaceNotFound       = ErrNotFound.WithMessage("No place with this id exists")
	ErrTransactionNotFound = ErrNotFound.WithMessage("No transaction with this id exists")
	ErrReferencedPlace     = ErrNotFound.WithMessage("This place does not exist")
	ErrReferencedUser      = ErrNotFound.WithMessage("This user does not exist")

	// Uniqueness conflicts surface as validation failures
	ErrPlaceNameTaken = ErrValidationFailed.WithMessage("A place with this name already exists")
	ErrEmailTaken     = ErrValidationFailed.WithMessage("There is already a user with this email address")
	ErrDuplicate      = ErrValidationFailed.WithMessage("This item already exists")
)
