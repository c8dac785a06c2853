package errors

import (
	"net/http"

	"cabby/internal/errors"
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
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Authentication-related errors.
	// ErrIncorrectCredentials covers both an unknown taxi number and a wrong
	// password. Callers must not produce a more specific error for either
	// case: an attacker probing for account existence sees one answer.
	ErrIncorrectCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_CREDENTIALS",
		"incorrect taxi number or password",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"invalid or expired session",
		"",
	)

	ErrAdminTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"ADMIN_TOKEN_INVALID",
		"missing or invalid admin token",
		"",
	)

	// Credential subsystem errors (hashing, RNG). Internal, not user-correctable.
	ErrCredentialFailure = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIAL_FAILURE",
		"credential processing failed",
		"",
	)

	// Persistence-related errors
	ErrTaxiNumberTaken = NewBaseError(
		http.StatusConflict,
		"TAXI_NUMBER_TAKEN",
		"taxi number already registered",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"failed to create account",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
