package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/review-server-go/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    42,
		Email: "ana@x.com",
		Role:  model.RoleClient,
	}
}

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret", 6*time.Hour, 168*time.Hour)

	t.Run("issue then verify returns the original claims", func(t *testing.T) {
		token, err := svc.Issue(testUser(), svc.LoginTTL())
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "ana@x.com", claims.Email)
		assert.Equal(t, model.RoleClient, claims.Role)
	})

	t.Run("expiry honors the requested ttl", func(t *testing.T) {
		token, err := svc.Issue(testUser(), svc.SignupTTL())
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)

		expected := time.Now().Add(svc.SignupTTL())
		assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("expired token returns ErrTokenExpired", func(t *testing.T) {
		token, err := svc.Issue(testUser(), -time.Minute)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("token signed with another secret returns ErrTokenInvalid", func(t *testing.T) {
		other := NewTokenService("other-secret", 6*time.Hour, 168*time.Hour)
		token, err := other.Issue(testUser(), time.Hour)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("malformed token returns ErrTokenInvalid", func(t *testing.T) {
		claims, err := svc.Verify("not-a-jwt")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("ttl asymmetry is preserved", func(t *testing.T) {
		assert.Equal(t, 6*time.Hour, svc.LoginTTL())
		assert.Equal(t, 168*time.Hour, svc.SignupTTL())
	})
}
