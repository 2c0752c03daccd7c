package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	tok, exp, err := m.GenerateToken("user-123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTParse_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	tok, _, err := m.GenerateToken("user-123", "user")
	require.NoError(t, err)

	_, err = m.ParseToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTParse_WrongSecret(t *testing.T) {
	a := JWTManager{Secret: []byte("secret-a"), TTL: time.Hour}
	b := JWTManager{Secret: []byte("secret-b"), TTL: time.Hour}

	tok, _, err := a.GenerateToken("user-123", "user")
	require.NoError(t, err)

	_, err = b.ParseToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTParse_Malformed(t *testing.T) {
	m := JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}

	_, err := m.ParseToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
