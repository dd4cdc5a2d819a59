package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthErrors_MatchUnauthorized(t *testing.T) {
	for _, err := range []error{ErrInvalidCredentials, ErrInvalidToken, ErrMissingToken, ErrUserNotFound, ErrTokenExpired} {
		assert.True(t, errors.Is(err, ErrorUnauthorized), "%v should match ErrorUnauthorized", err)
	}
}

func TestTokenExpired_IsInvalidToken(t *testing.T) {
	assert.ErrorIs(t, ErrTokenExpired, ErrInvalidToken)
	assert.NotErrorIs(t, ErrInvalidToken, ErrTokenExpired)
	assert.NotErrorIs(t, ErrInvalidCredentials, ErrInvalidToken)
}
