// Package errors is the catalogue of failures the planner reports to clients.
// Every error carries the HTTP status and the exact message the API answers with.
package errors

import (
	"net/http"

	"planner/internal/errors"
)

// AppError is an error that knows how it is rendered by the API.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is written to the response body as-is.
	Message() string
	// Details is extra context for logs. It is never sent to clients.
	Details() string
}

// BaseError is the AppError used by the predefined catalogue below.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError with the same code, so the copies returned by
// WithMessage and WithDetails still match the catalogue entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details for the logs.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// WithMessage returns a copy answering with message instead, keeping the code.
func (e *BaseError) WithMessage(message string) *BaseError {
	cp := *e
	cp.message = message

	return &cp
}

// Credential manager
var (
	ErrEmailAlreadyExists    = define(http.StatusBadRequest, "EMAIL_ALREADY_EXISTS", "Email already exists.")
	ErrAccountCreationFailed = define(http.StatusInternalServerError, "ACCOUNT_CREATION_FAILED", "Error registering user")
	ErrInvalidCredentials    = define(http.StatusBadRequest, "INVALID_CREDENTIALS", "Email or password is incorrect")
	ErrLoginFailed           = define(http.StatusInternalServerError, "LOGIN_FAILED", "Error logging in user")
	ErrPasswordHashFailed    = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Error processing password")
)

// Access gate
var (
	ErrTokenMissing = define(http.StatusUnauthorized, "TOKEN_MISSING", "Access denied. No token provided.")
	ErrTokenInvalid = define(http.StatusUnauthorized, "TOKEN_INVALID", "Invalid Token")
)

// Input
var (
	ErrValidationFailed      = define(http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed")
	ErrUnsupportedQueryField = define(http.StatusBadRequest, "UNSUPPORTED_QUERY_FIELD", "Field cannot be queried")
)

// Resources
var (
	ErrTaskNotFound     = define(http.StatusNotFound, "TASK_NOT_FOUND", "Task not found")
	ErrActivityNotFound = define(http.StatusNotFound, "ACTIVITY_NOT_FOUND", "Activity not found")
	ErrNoteNotFound     = define(http.StatusNotFound, "NOTE_NOT_FOUND", "Note not found")
)

var ErrInternalError = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later")

// DatabaseExecuteError reports a storage failure. The driver error stays
// reachable through errors.Is and errors.As.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError wraps err from the named storage operation.
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrapf(e.err, "storage: %s", e.operation).Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database operation failed" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
