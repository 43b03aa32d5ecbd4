package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	t.Run("hash then verify succeeds", func(t *testing.T) {
		hash, err := hasher.Hash("s3nha")
		require.NoError(t, err)
		assert.NotEqual(t, "s3nha", hash)
		assert.True(t, hasher.Verify("s3nha", hash))
	})

	t.Run("verify fails for wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("s3nha")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("outra-senha", hash))
	})

	t.Run("verify fails for mutated hash", func(t *testing.T) {
		hash, err := hasher.Hash("s3nha")
		require.NoError(t, err)

		mutated := []byte(hash)
		mutated[len(mutated)-1] ^= 0x01
		assert.False(t, hasher.Verify("s3nha", string(mutated)))
	})

	t.Run("same password hashes differently per salt", func(t *testing.T) {
		h1, err := hasher.Hash("s3nha")
		require.NoError(t, err)
		h2, err := hasher.Hash("s3nha")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		h := NewPasswordHasher(99)
		hash, err := h.Hash("s3nha")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
