package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, CheckPasswordHash("s3cret-pw", hash))
	assert.False(t, CheckPasswordHash("wrong-pw", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// Salted digests differ even for identical inputs; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("same-password", first))
	assert.True(t, CheckPasswordHash("same-password", second))
}

func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-digest"))
	assert.False(t, CheckPasswordHash("anything", ""))
}
