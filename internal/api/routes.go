package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mherren/daymix-server/internal/config"
	"github.com/mherren/daymix-server/internal/db"
)

func NewRouter(cfg *config.Config, database *db.DB) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)

	handlers := NewHandlers(cfg, database)
	limiter := NewRateLimiter(60, time.Minute)

	// Public endpoints
	r.Get("/health", handlers.Health)

	// API v1 routes (authenticated)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg))
		r.Use(JSONContentType)
		r.Use(RateLimitMiddleware(limiter))

		r.Post("/blend", handlers.Blend)
		r.Get("/categories", handlers.Categories)
	})

	return r
}
