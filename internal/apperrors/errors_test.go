package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	se := NewProfileNotFoundError("Riley")
	wrapped := fmt.Errorf("change profile: %w", se)

	assert.Same(t, se, Normalize(wrapped))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))

	internal := Normalize(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, internal.Code)
	assert.Equal(t, "boom", internal.Details)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(internal))
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *StandardError
		code   ErrorCode
		status int
	}{
		{NewInvalidRequestError("x"), ErrCodeInvalidRequest, http.StatusBadRequest},
		{NewValidationError("x"), ErrCodeValidationFailed, http.StatusBadRequest},
		{NewUnknownTraitError("nope"), ErrCodeUnknownTrait, http.StatusBadRequest},
		{NewUnknownCriterionError(errors.New("x")), ErrCodeUnknownCriterion, http.StatusBadRequest},
		{NewInvalidShareLinkError(errors.New("x")), ErrCodeInvalidShareLink, http.StatusBadRequest},
		{NewProfileConflictError("x"), ErrCodeProfileConflict, http.StatusConflict},
		{NewNotFoundError("x"), ErrCodeNotFound, http.StatusNotFound},
		{NewStorageError(errors.New("x")), ErrCodeStorageFailed, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, HTTPStatus(tc.err))
		assert.False(t, tc.err.Timestamp.IsZero())
	}
	assert.True(t, NewStorageError(errors.New("x")).Retryable)
}
