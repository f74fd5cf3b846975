package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("not signed in")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrOutOfStock      = errors.New("out of stock")
	ErrNetwork         = errors.New("network or server error")
	ErrServiceUnavail  = errors.New("service unavailable")
	ErrInternal        = errors.New("internal error")
)

// AppError represents a structured application error with HTTP status mapping.
// For errors produced from an API response, Status carries the response's
// status code.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// Unauthenticated creates a 401 error. Operations guard with this before any
// network call when no bearer token is available; the caller surfaces a
// sign-in prompt.
func Unauthenticated(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHENTICATED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthenticated,
	}
}

// Forbidden creates a 403 error.
func Forbidden(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     ErrForbidden,
	}
}

// Validation creates a 400 error for input rejected before any network call.
func Validation(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_FAILED",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrValidation,
	}
}

// OutOfStock creates a 409 error for a cart operation on a product with no
// stock. Enforced caller-side; no request is issued.
func OutOfStock(productName string) *AppError {
	return &AppError{
		Code:    "OUT_OF_STOCK",
		Message: fmt.Sprintf("%s is out of stock", productName),
		Status:  http.StatusConflict,
		Err:     ErrOutOfStock,
	}
}

// Network wraps a failed request (transport failure or server error) as a
// dismissible, non-retried error.
func Network(err error) *AppError {
	return &AppError{
		Code:    "NETWORK_ERROR",
		Message: "request failed",
		Status:  http.StatusBadGateway,
		Err:     fmt.Errorf("%w: %w", ErrNetwork, err),
	}
}

// FromStatus translates an API response status and message into the matching
// error value.
func FromStatus(status int, message string) *AppError {
	switch status {
	case http.StatusNotFound:
		return &AppError{Code: "NOT_FOUND", Message: message, Status: status, Err: ErrNotFound}
	case http.StatusUnauthorized:
		return &AppError{Code: "UNAUTHENTICATED", Message: message, Status: status, Err: ErrUnauthenticated}
	case http.StatusForbidden:
		return &AppError{Code: "FORBIDDEN", Message: message, Status: status, Err: ErrForbidden}
	case http.StatusBadRequest:
		return &AppError{Code: "VALIDATION_FAILED", Message: message, Status: status, Err: ErrValidation}
	case http.StatusServiceUnavailable:
		return &AppError{Code: "SERVICE_UNAVAILABLE", Message: message, Status: status, Err: ErrServiceUnavail}
	default:
		return &AppError{Code: "NETWORK_ERROR", Message: message, Status: status, Err: ErrNetwork}
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, ErrServiceUnavail):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
