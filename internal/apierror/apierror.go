// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed", Fields: fields}
}

// StatusError is a service-layer error carrying the HTTP status it should be
// surfaced with. Services return these for business-rule failures; anything
// else is treated as an internal error.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string { return e.Detail }

func NotFound(msg string) *StatusError {
	return &StatusError{Status: http.StatusNotFound, Detail: msg}
}

func Forbidden(msg string) *StatusError {
	return &StatusError{Status: http.StatusForbidden, Detail: msg}
}

func Conflict(msg string) *StatusError {
	return &StatusError{Status: http.StatusConflict, Detail: msg}
}

func BadRequest(msg string) *StatusError {
	return &StatusError{Status: http.StatusBadRequest, Detail: msg}
}

func Unauthorized(msg string) *StatusError {
	return &StatusError{Status: http.StatusUnauthorized, Detail: msg}
}

// HTTPStatus extracts the status of a StatusError, defaulting to 500.
func HTTPStatus(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}

// IsStatus reports whether err is a StatusError with the given status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
