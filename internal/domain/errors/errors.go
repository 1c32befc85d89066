package errors

import (
	"net/http"

	"keygate/internal/errors"
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
	// License-related errors
	ErrLicenseNotFound = NewBaseError(
		http.StatusNotFound,
		"LICENSE_NOT_FOUND",
		"License not found",
		"",
	)

	ErrLicenseKeyCollision = NewBaseError(
		http.StatusServiceUnavailable,
		"LICENSE_KEY_COLLISION",
		"Could not allocate a unique license key, please retry",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Admin session required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid password",
		"",
	)

	// Settings-related errors
	ErrMailNotConfigured = NewBaseError(
		http.StatusBadRequest,
		"SMTP_NOT_CONFIGURED",
		"SMTP settings are not configured",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)
)

// FieldError is a validation error naming the offending input field.
type FieldError struct {
	field  string
	reason string
}

// NewFieldError creates a validation error for field
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{field: field, reason: reason}
}

func (e *FieldError) Error() string {
	return e.field + ": " + e.reason
}

// Field returns the name of the offending field
func (e *FieldError) Field() string {
	return e.field
}

func (e *FieldError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *FieldError) ErrorCode() string {
	return "VALIDATION_ERROR"
}

func (e *FieldError) Message() string {
	return e.Error()
}

func (e *FieldError) Details() string {
	return e.field
}

// NotificationError is a failed email or chat dispatch. It is logged by the
// dispatcher and only surfaces through the SMTP test endpoint.
type NotificationError struct {
	channel string
	err     error
}

// NewNotificationError wraps a dispatch failure on channel
func NewNotificationError(channel string, err error) *NotificationError {
	return &NotificationError{channel: channel, err: err}
}

func (e *NotificationError) Error() string {
	return errors.Wrapf(e.err, "%s notification failed", e.channel).Error()
}

func (e *NotificationError) Unwrap() error {
	return e.err
}

// Channel returns the notification channel name
func (e *NotificationError) Channel() string {
	return e.channel
}

func (e *NotificationError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *NotificationError) ErrorCode() string {
	return "NOTIFICATION_FAILED"
}

func (e *NotificationError) Message() string {
	return "Failed to deliver " + e.channel + " notification"
}

func (e *NotificationError) Details() string {
	return e.err.Error()
}

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
