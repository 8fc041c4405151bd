package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := NewValidationError("password", "Password must contain at least one number")

	assert.True(t, errors.Is(err, ErrorValidation))
	assert.False(t, errors.Is(err, ErrorInternal))
	assert.Equal(t, "password: Password must contain at least one number", err.Error())

	wrapped := fmt.Errorf("register: %w", err)
	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "password", ve.Field)
}

func TestValidationError_NoField(t *testing.T) {
	err := NewValidationError("", "bad input")
	assert.Equal(t, "bad input", err.Error())
}

func TestInfrastructureError_MatchesInternalAndUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInfrastructureError("find user", cause)

	assert.True(t, errors.Is(err, ErrorInternal))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "find user: connection refused", err.Error())
}
