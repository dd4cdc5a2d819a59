package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerAt(secret string, validity time.Duration, now time.Time) *TokenManager {
	m := NewTokenManager([]byte(secret), validity)
	m.now = func() time.Time { return now }
	return m
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := newManagerAt("super-secret", time.Hour, now)

	tok, err := m.Issue("1", "a@x.com", "user")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(time.Hour)))
	assert.True(t, claims.IssuedAt.Time.Equal(now))
}

func TestVerify_ExpiresAfterValidityWindow(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)
	m := newManagerAt("secret", time.Hour, issued)

	tok, err := m.Issue("u1", "u1@x.com", "user")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = m.Verify(tok)
	require.NoError(t, err, "token must be valid inside the window")

	m.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = m.Verify(tok)
	require.ErrorIs(t, err, common.ErrTokenExpired)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager([]byte("right-secret"), time.Hour).Issue("u2", "e", "user")
	require.NoError(t, err)

	_, err = NewTokenManager([]byte("wrong-secret"), time.Hour).Verify(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.False(t, errors.Is(err, common.ErrTokenExpired))
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("k"), time.Hour)
	for _, s := range []string{"", "not.a.jwt", "abc"} {
		_, err := m.Verify(s)
		require.ErrorIs(t, err, common.ErrInvalidToken, "input %q", s)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenManager(secret, time.Hour).Verify(s)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "1"}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenManager(secret, time.Hour).Verify(s)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
