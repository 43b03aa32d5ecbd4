package middleware

import (
	"net/http"

	"github.com/cinelog/review-server-go/internal/model"
)

// RequireRole restricts a route to the given roles. It assumes AuthMiddleware
// already ran and attached claims; anything else is rejected.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())
			if claims == nil || !allowed[claims.Role] {
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error": "Acesso negado.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
