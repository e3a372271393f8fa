package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	t.Run("HashIsNotPlaintext", func(t *testing.T) {
		assert.NotEqual(t, "s3cret-pass", hashed)
		assert.NotContains(t, hashed, "s3cret-pass")
	})

	t.Run("CheckMatches", func(t *testing.T) {
		assert.True(t, CheckPassword("s3cret-pass", hashed))
	})

	t.Run("CheckRejectsWrongPassword", func(t *testing.T) {
		assert.False(t, CheckPassword("wrong", hashed))
	})

	t.Run("CheckRejectsGarbageHash", func(t *testing.T) {
		assert.False(t, CheckPassword("s3cret-pass", "not-a-bcrypt-hash"))
	})

	t.Run("OverlongPasswordErrors", func(t *testing.T) {
		out, err := HashPassword(strings.Repeat("a", 100))
		assert.Error(t, err) // 超过 bcrypt 的 72 字节上限
		assert.Empty(t, out)
	})

	t.Run("MaxLengthPasswordStillWorks", func(t *testing.T) {
		pw := strings.Repeat("a", 72)
		h, err := HashPassword(pw)
		require.NoError(t, err)
		assert.True(t, CheckPassword(pw, h))
	})
}
