package helpers

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueActionToken(t *testing.T) {
	t.Parallel()

	tok, err := IssueActionToken(time.Hour)
	require.NoError(t, err)

	// 20 random bytes hex-encoded
	assert.Len(t, tok.Cleartext, 40)
	_, err = hex.DecodeString(tok.Cleartext)
	assert.NoError(t, err)

	assert.Equal(t, HashActionToken(tok.Cleartext), tok.Digest)
	assert.NotEqual(t, tok.Cleartext, tok.Digest)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, 5*time.Second)
}

func TestIssueActionToken_Unique(t *testing.T) {
	t.Parallel()

	a, err := IssueActionToken(time.Hour)
	require.NoError(t, err)
	b, err := IssueActionToken(time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a.Cleartext, b.Cleartext)
}

func TestValidateActionToken(t *testing.T) {
	t.Parallel()

	tok, err := IssueActionToken(time.Hour)
	require.NoError(t, err)
	now := time.Now()

	assert.True(t, ValidateActionToken(tok.Cleartext, tok.Digest, tok.ExpiresAt, now))

	// wrong cleartext
	assert.False(t, ValidateActionToken("deadbeef", tok.Digest, tok.ExpiresAt, now))

	// expired
	assert.False(t, ValidateActionToken(tok.Cleartext, tok.Digest, tok.ExpiresAt, tok.ExpiresAt.Add(time.Second)))

	// cleared slot
	assert.False(t, ValidateActionToken(tok.Cleartext, "", time.Time{}, now))
	assert.False(t, ValidateActionToken(tok.Cleartext, tok.Digest, time.Time{}, now))
}
