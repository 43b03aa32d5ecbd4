package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cinelog/review-server-go/internal/audit"
	"github.com/cinelog/review-server-go/internal/auth"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// GetClaims returns the verified identity attached by AuthMiddleware, or nil
// on unauthenticated requests.
func GetClaims(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

// AuthMiddleware is the gate in front of protected routes. A missing token is
// 401; a token that is present but forged or expired is 403. The split is
// part of the API contract.
type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "Token não fornecido.",
			})
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventAuthFailure})
			writeJSON(w, http.StatusForbidden, map[string]string{
				"error": "Token inválido ou expirado.",
			})
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
