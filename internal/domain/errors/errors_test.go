package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/errors"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails("units must be positive")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "input validation failed: units must be positive", err.Error())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrBloodRequestNotFound.WrapMessage("accept request")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "BLOOD_REQUEST_NOT_FOUND", appErr.ErrorCode())
}

func TestStoreExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreExecuteError(cause, "persist blood request")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "STORE_FAILED", err.ErrorCode())
	assert.Equal(t, "persist blood request", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
