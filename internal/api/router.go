package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/bright-coral-crab/tooldeck/internal/api/auth"
	"github.com/bright-coral-crab/tooldeck/internal/api/middleware"
	"github.com/bright-coral-crab/tooldeck/internal/api/settings"
	"github.com/bright-coral-crab/tooldeck/internal/api/tools"
	"github.com/bright-coral-crab/tooldeck/internal/api/users"
)

// setupRouter creates and configures the chi router with all routes.
// Authorization is not enforced here: every protected route passes the
// caller's role straight into the store, which owns the decision. The
// router only establishes who the caller is.
func (s *Server) setupRouter() (*chi.Mux, error) {
	r := chi.NewRouter()

	jwtService := auth.NewJWTService(s.config.JWTSecret, s.config.AccessTokenTTL)

	authHandler, err := auth.NewHandler(jwtService, s.kv)
	if err != nil {
		return nil, err
	}

	ipLimiter := middleware.NewRateLimiter(s.config.RateLimitPerIP)
	userLimiter := middleware.NewRateLimiter(s.config.RateLimitPerUser)

	// Global middleware
	r.Use(middleware.RequestLogger(s.config.Verbose))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.PrometheusMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Login is public, with IP rate limiting
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(ipLimiter))
			r.Post("/auth/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(jwtService))
			r.Use(middleware.RateLimitByUser(userLimiter))

			toolHandler := tools.NewHandler(s.store)
			r.Route("/tools", func(r chi.Router) {
				r.Get("/", toolHandler.List)
				r.Post("/", toolHandler.Create)
				r.Put("/{name}", toolHandler.Update)
				r.Delete("/{name}", toolHandler.Delete)
			})

			userHandler := users.NewHandler(s.store)
			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			settingsHandler := settings.NewHandler(s.store)
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)
				r.Put("/", settingsHandler.Save)
			})
		})
	})

	// Health checks (public, no rate limit)
	r.Get("/health", s.healthHandler.Health)
	r.Get("/health/live", s.healthHandler.Live)
	r.Get("/health/ready", s.healthHandler.Ready)

	return r, nil
}
