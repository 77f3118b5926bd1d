package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", "supportly-backend", time.Hour)

	token, exp, err := m.GenerateAccessToken(42, "jane@example.com")
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().UnixMilli())

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Subject)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestValidateTokenOfType(t *testing.T) {
	m := NewManager("test-secret", "supportly-backend", time.Hour)

	token, err := m.GenerateToken(7, "jane@example.com", TypeReset, time.Hour)
	require.NoError(t, err)

	claims, err := m.ValidateTokenOfType(token, TypeReset)
	require.NoError(t, err)
	assert.Equal(t, TypeReset, claims.Type)

	_, err = m.ValidateTokenOfType(token, TypeAccess)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestExpiredToken(t *testing.T) {
	m := NewManager("test-secret", "supportly-backend", time.Hour)

	token, err := m.GenerateToken(7, "jane@example.com", TypeTwofa, -time.Minute)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTamperedToken(t *testing.T) {
	m := NewManager("test-secret", "supportly-backend", time.Hour)
	other := NewManager("other-secret", "supportly-backend", time.Hour)

	token, _, err := m.GenerateAccessToken(1, "jane@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
