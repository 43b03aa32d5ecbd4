package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/review-server-go/internal/auth"
	"github.com/cinelog/review-server-go/internal/model"
)

func newTestTokens() *auth.TokenService {
	return auth.NewTokenService("test-secret", 6*time.Hour, 168*time.Hour)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTestTokens()
	user := &model.User{ID: 7, Email: "ana@x.com", Role: model.RoleClient}

	t.Run("allows request with valid token and attaches claims", func(t *testing.T) {
		token, err := tokens.Issue(user, time.Hour)
		require.NoError(t, err)

		middleware := NewAuthMiddleware(tokens)
		handler := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())
			require.NotNil(t, claims)
			assert.Equal(t, int64(7), claims.UserID)
			assert.Equal(t, "ana@x.com", claims.Email)
			assert.Equal(t, model.RoleClient, claims.Role)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects request without token with 401", func(t *testing.T) {
		middleware := NewAuthMiddleware(tokens)
		handler := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest("GET", "/test", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token não fornecido.")
	})

	t.Run("rejects non-bearer authorization header with 401", func(t *testing.T) {
		middleware := NewAuthMiddleware(tokens)
		handler := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects forged token with 403", func(t *testing.T) {
		other := auth.NewTokenService("other-secret", time.Hour, time.Hour)
		token, err := other.Issue(user, time.Hour)
		require.NoError(t, err)

		middleware := NewAuthMiddleware(tokens)
		handler := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token inválido ou expirado.")
	})

	t.Run("rejects expired token with 403", func(t *testing.T) {
		token, err := tokens.Issue(user, -time.Minute)
		require.NoError(t, err)

		middleware := NewAuthMiddleware(tokens)
		handler := middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetClaims(t *testing.T) {
	t.Run("returns nil when no claims in context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		assert.Nil(t, GetClaims(req.Context()))
	})
}
