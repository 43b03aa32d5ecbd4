package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cinelog/review-server-go/internal/config"
	"github.com/cinelog/review-server-go/internal/handler"
	"github.com/cinelog/review-server-go/internal/middleware"
	"github.com/cinelog/review-server-go/internal/model"
)

// Access is the authorization requirement of a route.
type Access int

const (
	// Public routes take no token at all.
	Public Access = iota
	// Authenticated routes require a valid bearer token.
	Authenticated
	// Admin routes additionally require the ADMIN role.
	Admin
)

type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
	access  Access
}

type Deps struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Reviews      *handler.ReviewHandler
	AuthMW       *middleware.AuthMiddleware
	LoginLimiter *middleware.LoginRateLimitMiddleware
}

// New builds the router from a single declarative table. Protection is decided
// here, per route, in one reviewed place; handlers never gate themselves.
func New(deps Deps) chi.Router {
	routes := []route{
		{http.MethodPost, "/login", deps.Auth.Login, Public},

		{http.MethodPost, "/usuarios", deps.Users.Create, Public},
		{http.MethodGet, "/usuarios", deps.Users.List, Admin},
		{http.MethodPatch, "/usuarios/{id}", deps.Users.Update, Authenticated},
		{http.MethodPatch, "/usuarios/{id}/desativar", deps.Users.Deactivate, Authenticated},

		{http.MethodPost, "/avaliacoes", deps.Reviews.Create, Authenticated},
		{http.MethodGet, "/avaliacoes", deps.Reviews.List, Public},
		{http.MethodPut, "/avaliacoes/{idUsuario}/{idFilme}", deps.Reviews.Update, Authenticated},
		{http.MethodPatch, "/avaliacoes/{idUsuario}/{idFilme}", deps.Reviews.Update, Authenticated},
		{http.MethodDelete, "/avaliacoes/{idUsuario}/{idFilme}", deps.Reviews.Delete, Authenticated},
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewBodyLimitMiddleware(middleware.DefaultMaxBodySize).Handler)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	for _, rt := range routes {
		h := http.Handler(rt.handler)
		switch rt.access {
		case Authenticated:
			h = deps.AuthMW.Handler(h)
		case Admin:
			h = deps.AuthMW.Handler(middleware.RequireRole(model.RoleAdmin)(h))
		}
		if rt.method == http.MethodPost && rt.pattern == "/login" {
			h = deps.LoginLimiter.Handler(h)
		}
		r.Method(rt.method, rt.pattern, h)
	}

	return r
}
