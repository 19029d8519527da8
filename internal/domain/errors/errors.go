package errors

import (
	"fmt"
	"net/http"

	"photocard/internal/domain/entity"
	"photocard/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails adds detailed error information. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Replication pipeline errors. These never leave the replica; they are
	// logged and degrade completeness of the local graph.
	ErrUnresolvedReference = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNRESOLVED_REFERENCE",
		"referenced document is not present locally",
		"",
	)

	ErrOutOfOrderChange = NewBaseError(
		http.StatusConflict,
		"OUT_OF_ORDER_CHANGE",
		"change position does not match the local layout",
		"",
	)

	// Change feed errors
	ErrChangeFeed = NewBaseError(
		http.StatusServiceUnavailable,
		"CHANGE_FEED_FAILED",
		"change feed subscription failed",
		"",
	)

	// Authentication errors
	ErrAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"authentication failed",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"wrong email or password",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"email is already registered",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"password is too weak",
		"",
	)

	ErrNoCurrentUser = NewBaseError(
		http.StatusUnauthorized,
		"NO_CURRENT_USER",
		"no user is signed in",
		"",
	)

	// Storage errors
	ErrStorageNotFound = NewBaseError(
		http.StatusNotFound,
		"STORAGE_NOT_FOUND",
		"object not found in storage",
		"",
	)

	ErrStorageUnavailable = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_UNAVAILABLE",
		"storage request failed",
		"",
	)

	// Push notification errors
	ErrPushUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PUSH_UNAVAILABLE",
		"push notification service unavailable",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// ChangeFeedError reports a failed subscription to one collection's
// change feed, implementing the AppError interface
type ChangeFeedError struct {
	Collection entity.Collection
	Attempt    int
	err        error
}

// NewChangeFeedError creates a change feed error for collection
func NewChangeFeedError(collection entity.Collection, attempt int, err error) *ChangeFeedError {
	return &ChangeFeedError{
		Collection: collection,
		Attempt:    attempt,
		err:        err,
	}
}

// Error implements the error interface
func (e *ChangeFeedError) Error() string {
	return fmt.Sprintf("change feed %s (attempt %d): %v", e.Collection, e.Attempt, e.err)
}

// Unwrap returns the source error
func (e *ChangeFeedError) Unwrap() error {
	return e.err
}

// Is matches ErrChangeFeed
func (e *ChangeFeedError) Is(target error) bool {
	return target == ErrChangeFeed
}

// HTTPCode returns the HTTP status code
func (e *ChangeFeedError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *ChangeFeedError) ErrorCode() string {
	return ErrChangeFeed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ChangeFeedError) Message() string {
	return ErrChangeFeed.Message()
}

// Details returns detailed error information
func (e *ChangeFeedError) Details() string {
	if e.err == nil {
		return string(e.Collection)
	}

	return string(e.Collection) + ": " + e.err.Error()
}
