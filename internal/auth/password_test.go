package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("Pikachu123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("Pikachu123", digest))
	assert.False(t, VerifyPassword("Pikachu123x", digest))
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("Pikachu123")
	require.NoError(t, err)
	second, err := HashPassword("Pikachu123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("Pikachu123", first))
	assert.True(t, VerifyPassword("Pikachu123", second))
}

func TestHashPasswordTruncatesAt72Bytes(t *testing.T) {
	long := strings.Repeat("a", 80)
	digest, err := HashPassword(long)
	require.NoError(t, err)

	// Only the first 72 bytes take part in the hash.
	assert.True(t, VerifyPassword(long, digest))
	assert.True(t, VerifyPassword(strings.Repeat("a", 72), digest))
	assert.False(t, VerifyPassword(strings.Repeat("a", 71), digest))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("whatever", "not-a-bcrypt-digest"))
}
