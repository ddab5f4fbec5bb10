package server

import (
	"list-sync/auth"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the push channel, the status query and the list mutations
// behind bearer authentication. No request timeout middleware is installed:
// the push channel is long-lived.
func NewRouter(log *slog.Logger, tokens *auth.TokenService, events, status http.Handler, lists *ListHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens, log))
		r.Method(http.MethodGet, "/api/events", events)
		r.Method(http.MethodGet, "/api/events/status", status)
		r.Route("/api/lists", lists.Routes)
	})
	return r
}
