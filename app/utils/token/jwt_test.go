package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) *JWTService {
	return NewJWTService(JWTConfig{Secret: "test-secret", TTL: ttl})
}

func TestGenerateAndVerifyToken(t *testing.T) {
	svc := newTestService(time.Hour)

	tokenString, err := svc.GenerateToken(123456789)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	userID, err := svc.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), userID)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	tokenString, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.VerifyToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenString, err := newTestService(time.Hour).GenerateToken(42)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{Secret: "different-secret", TTL: time.Hour})
	_, err = other.VerifyToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, garbage := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := svc.VerifyToken(garbage)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}
