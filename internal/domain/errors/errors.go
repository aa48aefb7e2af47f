// Package errors defines the application's error taxonomy: field validation
// errors with stable display messages, resource errors, and the opaque
// unexpected error. The delivery layer maps these to transport responses.
package errors

import (
	"net/http"
	"strings"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Resource and terminal errors.
var (
	// ErrSessionNotFound is a resource-lookup failure: the session UUID does
	// not reference a live session. Distinct from input-shape failures.
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found",
	)

	// ErrUnauthorized means the supplied refresh token does not match the
	// session's stored one.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
	)

	// ErrUnexpected covers persistence/crypto failures outside documented
	// failure modes. Full detail goes to the fault reporter; callers only
	// see this opaque value.
	ErrUnexpected = NewBaseError(
		http.StatusInternalServerError,
		"UNEXPECTED_ERROR",
		"Unexpected error",
	)
)

// FieldError is a single input-validation violation. Its code and message are
// part of the external contract: clients match on them, so they must stay
// stable.
type FieldError struct {
	code    string
	message string
}

// NewFieldError creates a field validation error with a stable code and
// display message.
func NewFieldError(code, message string) *FieldError {
	return &FieldError{code: code, message: message}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.message
}

// Code returns the stable validation error code.
func (e *FieldError) Code() string {
	return e.code
}

// Message returns the stable display message.
func (e *FieldError) Message() string {
	return e.message
}

// The full code -> message mapping for field validation errors. SignIn's
// teacher-not-found and password-mismatch deliberately share one code and one
// message so a caller cannot tell which credential was wrong.
var (
	ErrEmailBlank       = NewFieldError("EMAIL_BLANK", "Email can't be blank")
	ErrEmailInvalid     = NewFieldError("EMAIL_INVALID", "Email is invalid")
	ErrPasswordBlank    = NewFieldError("PASSWORD_BLANK", "Password can't be blank")
	ErrPasswordTooShort = NewFieldError("PASSWORD_TOO_SHORT", "Password is too short (minimum is 8 characters)")
	ErrPasswordTooLong  = NewFieldError("PASSWORD_TOO_LONG", "Password is too long (maximum is 128 characters)")

	ErrTeacherNotFound  = NewFieldError("INVALID_CREDENTIALS", "Invalid email/password combination")
	ErrPasswordMismatch = NewFieldError("INVALID_CREDENTIALS", "Invalid email/password combination")

	ErrSessionUUIDBlank  = NewFieldError("SESSION_UUID_BLANK", "Session UUID can't be blank")
	ErrRefreshTokenBlank = NewFieldError("REFRESH_TOKEN_BLANK", "Refresh token can't be blank")
)

// ValidationErrors is the "invalid params" error family: the complete list of
// violations found in a request, never truncated to the first.
type ValidationErrors []*FieldError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fieldErr := range e {
		msgs = append(msgs, fieldErr.Message())
	}

	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.Is/errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, fieldErr := range e {
		errs = append(errs, fieldErr)
	}

	return errs
}

// HTTPCode returns the HTTP status code.
func (e ValidationErrors) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code.
func (e ValidationErrors) ErrorCode() string {
	return "INVALID_PARAMS"
}

// Message returns the user-friendly error message.
func (e ValidationErrors) Message() string {
	return e.Error()
}

// Messages returns the stable display strings, in violation order.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, fieldErr := range e {
		msgs = append(msgs, fieldErr.Message())
	}

	return msgs
}
