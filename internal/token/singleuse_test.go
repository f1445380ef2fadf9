package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueSingleUse(t *testing.T) {
	t.Parallel()

	plaintext, hash, err := IssueSingleUse()
	require.NoError(t, err)

	assert.NotEmpty(t, plaintext)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, plaintext, hash, "stored hash must not equal the plaintext token")
	assert.Equal(t, HashSingleUse(plaintext), hash)

	other, _, err := IssueSingleUse()
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, other)
}

func TestVerifySingleUse(t *testing.T) {
	t.Parallel()

	plaintext, hash, err := IssueSingleUse()
	require.NoError(t, err)

	future := time.Now().Add(10 * time.Minute)
	past := time.Now().Add(-time.Minute)

	assert.True(t, VerifySingleUse(plaintext, hash, future))
	assert.True(t, VerifySingleUse(plaintext, hash, time.Time{}), "zero expiry means no expiry")

	assert.False(t, VerifySingleUse(plaintext, hash, past), "expired token must be rejected")
	assert.False(t, VerifySingleUse("tampered"+plaintext, hash, future))
	assert.False(t, VerifySingleUse(plaintext, "", future), "cleared hash rejects a second use")
	assert.False(t, VerifySingleUse("", hash, future))
	assert.False(t, VerifySingleUse(hash, hash, future), "supplying the stored hash itself must fail")
}
