// Package api provides the HTTP REST API server.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bright-coral-crab/tooldeck/internal/api/health"
	"github.com/bright-coral-crab/tooldeck/internal/storage"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

// Config contains HTTP API server configuration.
type Config struct {
	Address          string
	JWTSecret        []byte
	AccessTokenTTL   time.Duration
	RateLimitPerIP   int // login attempts per minute per IP
	RateLimitPerUser int // authenticated requests per minute per user
	Verbose          bool
}

// SetDefaults applies default values for missing configuration.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.AccessTokenTTL == 0 {
		c.AccessTokenTTL = 15 * time.Minute
	}
	if c.RateLimitPerIP == 0 {
		c.RateLimitPerIP = 10
	}
	if c.RateLimitPerUser == 0 {
		c.RateLimitPerUser = 100
	}
}

// Server is the HTTP API server.
type Server struct {
	config        *Config
	store         *store.Store
	kv            storage.KV
	server        *http.Server
	healthHandler *health.Handler
}

// New creates a new API server over the entity store. The key-value
// layer is handed in separately so the login endpoint can persist the
// selected role.
func New(cfg *Config, st *store.Store, kv storage.KV) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT secret is required")
	}

	cfg.SetDefaults()

	s := &Server{
		config:        cfg,
		store:         st,
		kv:            kv,
		healthHandler: health.NewHandler(),
	}

	router, err := s.setupRouter()
	if err != nil {
		return nil, err
	}

	s.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		log.Printf("HTTP API listening on %s", s.config.Address)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("shutting down HTTP API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.config.Address
}

// RegisterHealthChecker adds a health checker to the server.
func (s *Server) RegisterHealthChecker(c health.Checker) {
	if s.healthHandler != nil {
		s.healthHandler.RegisterChecker(c)
	}
}
