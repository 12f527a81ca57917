package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
// Ownership violations surface as this same error so foreign resource IDs
// are indistinguishable from IDs that never existed.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates a verified identity that is not allowed the operation.
var ErrForbidden = errors.New("forbidden")

// ErrServiceUnavailable indicates a dependency (typically the database) did not
// respond within the configured deadline.
var ErrServiceUnavailable = errors.New("service unavailable")

// ErrUpstream indicates a third-party API failure. The upstream status is
// never forwarded to the caller.
var ErrUpstream = errors.New("upstream service error")

// AppError couples an error with the HTTP status code and the safe message
// that handlers are allowed to return. Raw driver or provider messages stay
// internal.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}

func newAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, err: err}
}

func NewBadRequestError(message string) *AppError {
	return newAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError reports a duplicate unique field. It carries a 400 status:
// that is what existing clients of this API observe for duplicate
// registrations.
func NewConflictError(message string) *AppError {
	return newAppError(http.StatusBadRequest, message, ErrDuplicate)
}

func NewUnauthorizedError(message string) *AppError {
	return newAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return newAppError(http.StatusForbidden, message, ErrForbidden)
}

func NewNotFoundError(message string) *AppError {
	return newAppError(http.StatusNotFound, message, ErrNotFound)
}

func NewInternalServerError(message string) *AppError {
	return newAppError(http.StatusInternalServerError, message, nil)
}

func NewServiceUnavailableError(message string) *AppError {
	return newAppError(http.StatusServiceUnavailable, message, ErrServiceUnavailable)
}
