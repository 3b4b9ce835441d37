// Package server exposes schedule generation over HTTP: a JSON endpoint, a
// plain-text visualized endpoint, and health/root endpoints.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iterary/plastron/pkg/schedule"
)

// Version reported by the root and health endpoints.
const Version = "0.1.0"

// Config holds server settings.
type Config struct {
	Addr        string // Listen address (default ":8000")
	APIKey      string // Expected X-API-Key value
	KeyRequired bool   // Whether requests must present the API key
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Addr: ":8000"}
}

// Server is the plastron REST API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    Config
	source    schedule.SectionSource
	params    schedule.Params
	startTime time.Time
}

// New creates a Server with all routes registered. source supplies scraped
// sections per course; params tunes the cost model for every request.
func New(cfg Config, source schedule.SectionSource, params schedule.Params, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		source:    source,
		params:    params,
		startTime: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.config.Addr, "key_required", s.config.KeyRequired)
	return http.ListenAndServe(s.config.Addr, s.router)
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(apiKeyMiddleware(s.config))
		r.Post("/schedules", s.handleGenerate)
		r.Post("/schedules/visualized", s.handleVisualize)
	})
}
