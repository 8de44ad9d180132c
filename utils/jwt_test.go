package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("user-1", "agent@example.com", "agent", "secret", time.Minute)
	require.NoError(t, err)

	claims := VerifyToken(token, "secret")
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, "agent", claims.Role)
}

func TestGenerateToken_UniquePerCall(t *testing.T) {
	// back-to-back tokens share second-granularity iat/exp, only the jti
	// tells them apart
	first, err := GenerateToken("user-1", "a@b.co", "agent", "secret", time.Minute)
	require.NoError(t, err)
	second, err := GenerateToken("user-1", "a@b.co", "agent", "secret", time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyToken_FailuresReturnNil(t *testing.T) {
	token, err := GenerateToken("user-1", "a@b.co", "agent", "secret", time.Minute)
	require.NoError(t, err)

	assert.Nil(t, VerifyToken(token, "other-secret"))
	assert.Nil(t, VerifyToken("", "secret"))
	assert.Nil(t, VerifyToken("not.a.jwt", "secret"))
	assert.Nil(t, VerifyToken(token+"tampered", "secret"))
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", "a@b.co", "agent", "secret", -time.Minute)
	require.NoError(t, err)

	assert.Nil(t, VerifyToken(token, "secret"))
}
