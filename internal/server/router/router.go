// Package router wires the relay's HTTP surface.
package router

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/handlers"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/middleware"
)

// Config holds the dependencies for building the router.
type Config struct {
	SyncHandler       *handlers.SyncHandler
	HealthHandler     *handlers.HealthHandler
	Logger            *slog.Logger
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(cors.Handler(cors.Options{
		// Browser clients sync directly from the web app
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.Logger))
			r.Post("/sync", cfg.SyncHandler.Sync)
		})
	})

	return r
}
