// Package apperrors provides the structured errors returned at the API boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type ErrorCode string

const (
	ErrCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnknownTrait     ErrorCode = "UNKNOWN_TRAIT"
	ErrCodeUnknownCriterion ErrorCode = "UNKNOWN_CRITERION"
	ErrCodeInvalidShareLink ErrorCode = "INVALID_SHARE_LINK"
	ErrCodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeProfileConflict  ErrorCode = "PROFILE_CONFLICT"
	ErrCodeStorageFailed    ErrorCode = "STORAGE_FAILED"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the error shape written to clients.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"-"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func newError(status int, code ErrorCode, message, details string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidRequestError(details string) *StandardError {
	return newError(http.StatusBadRequest, ErrCodeInvalidRequest, "Malformed request", details)
}

func NewValidationError(details string) *StandardError {
	return newError(http.StatusBadRequest, ErrCodeValidationFailed, "Request validation failed", details)
}

func NewUnknownTraitError(id string) *StandardError {
	return newError(http.StatusBadRequest, ErrCodeUnknownTrait, "Unknown trait", fmt.Sprintf("trait_id: %s", id))
}

func NewUnknownCriterionError(err error) *StandardError {
	return newError(http.StatusBadRequest, ErrCodeUnknownCriterion, "Unknown criterion or option", err.Error())
}

func NewInvalidShareLinkError(err error) *StandardError {
	return newError(http.StatusBadRequest, ErrCodeInvalidShareLink, "Share link could not be decoded", err.Error())
}

func NewProfileNotFoundError(name string) *StandardError {
	return newError(http.StatusNotFound, ErrCodeProfileNotFound, "Profile not found", fmt.Sprintf("profile: %s", name))
}

func NewProfileConflictError(details string) *StandardError {
	return newError(http.StatusConflict, ErrCodeProfileConflict, "Profile operation not allowed", details)
}

func NewNotFoundError(details string) *StandardError {
	return newError(http.StatusNotFound, ErrCodeNotFound, "Not found", details)
}

// NewStorageError is retryable; the store may recover.
func NewStorageError(err error) *StandardError {
	e := newError(http.StatusInternalServerError, ErrCodeStorageFailed, "Storage error", err.Error())
	e.Retryable = true
	return e
}

// Normalize returns err as a StandardError, wrapping unknown errors as internal.
func Normalize(err error) *StandardError {
	var se *StandardError
	if errors.As(err, &se) {
		return se
	}
	return newError(http.StatusInternalServerError, ErrCodeInternal, "Unexpected error", err.Error())
}

// HTTPStatus maps an error to a response status.
func HTTPStatus(err error) int {
	se := Normalize(err)
	if se.Status == 0 {
		return http.StatusInternalServerError
	}
	return se.Status
}
