package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("validation failed", map[string]any{"name": "is required"})

	converted := ToDomainError(original)
	require.NotNil(t, converted)
	assert.Equal(t, "VALIDATION_FAILED", converted.Code)
	assert.Equal(t, http.StatusBadRequest, converted.HTTPStatus)
	assert.Equal(t, "is required", converted.Details["name"])
}

func TestToDomainErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading account: %w", NewUnauthorized("invalid credentials"))

	converted := ToDomainError(wrapped)
	assert.Equal(t, http.StatusUnauthorized, converted.HTTPStatus)
	assert.Equal(t, "invalid credentials", converted.Message)
}

func TestToDomainErrorMapsNoRowsToNotFound(t *testing.T) {
	converted := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", converted.Code)
	assert.Equal(t, http.StatusNotFound, converted.HTTPStatus)

	converted = ToDomainError(fmt.Errorf("fetching complaint: %w", pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, converted.HTTPStatus)
}

func TestToDomainErrorHidesUnknownCauses(t *testing.T) {
	cause := errors.New("connection reset by peer")

	converted := ToDomainError(cause)
	assert.Equal(t, "INTERNAL_ERROR", converted.Code)
	assert.Equal(t, http.StatusInternalServerError, converted.HTTPStatus)
	assert.Equal(t, "internal server error", converted.Message)
	assert.ErrorIs(t, converted, cause)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
}

func TestErrorConstructorStatuses(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{NewNotFound("complaint"), http.StatusNotFound, "NOT_FOUND"},
		{NewUnauthorized("nope"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewForbidden("nope"), http.StatusForbidden, "FORBIDDEN"},
		{NewTooManyRequests("slow down"), http.StatusTooManyRequests, "RATE_LIMITED"},
	}
	for _, tt := range tests {
		converted := ToDomainError(tt.err)
		assert.Equal(t, tt.status, converted.HTTPStatus)
		assert.Equal(t, tt.code, converted.Code)
	}
}

func TestNotFoundMessageNamesResource(t *testing.T) {
	converted := ToDomainError(NewNotFound("complaint"))
	assert.Equal(t, "complaint not found", converted.Message)
}
