package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"ldclash-backend/internal/config"
	"ldclash-backend/internal/handlers"
	"ldclash-backend/internal/middleware"
)

func New(
	cfg *config.Config,
	chatHandler *handlers.ChatHandler,
	authHandler *handlers.AuthHandler,
	sessions *middleware.SessionAuth,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.FrontendURL))

	// Health check (outside every gate)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		// Edge gate: everything except /health sits behind basic auth when
		// the credential pair is configured.
		if cfg.BasicAuthEnabled() {
			r.Use(middleware.BasicAuth(cfg.BasicAuthUser, cfg.BasicAuthPass))
		}

		r.Route("/api/v1", func(r chi.Router) {
			// ──── Login (public past the edge gate) ────
			r.Post("/login", authHandler.Login)

			// ──── Chat (session gate when a site password is set) ────
			r.Group(func(r chi.Router) {
				if cfg.PasswordGateEnabled() {
					r.Use(sessions.Middleware)
				}
				r.Post("/chat", chatHandler.Chat)
			})
		})

		// ──── Static UI ────
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	})

	return r
}
