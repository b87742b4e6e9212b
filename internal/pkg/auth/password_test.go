package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, CheckPassword("secreto123", hash))
	assert.False(t, CheckPassword("otro", hash))
}

func TestGenerateTempPassword(t *testing.T) {
	shape := regexp.MustCompile(`^[A-Za-z]{4}[0-9]{4}[A-Za-z]{2}$`)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		password, err := GenerateTempPassword()
		require.NoError(t, err)
		assert.Regexp(t, shape, password)

		// No look-alike characters
		assert.NotContains(t, password, "0")
		assert.NotContains(t, password, "1")
		assert.NotContains(t, password, "O")
		assert.NotContains(t, password, "l")
		assert.NotContains(t, password, "I")

		seen[password] = true
	}
	assert.Greater(t, len(seen), 1, "passwords should not repeat")
}
