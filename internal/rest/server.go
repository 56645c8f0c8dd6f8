// Package rest exposes the DER decoder over HTTP.
package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/derview/derview/internal/config"
)

// Server is the decode API server.
type Server struct {
	cfg *config.Config
}

// NewServer creates a server with the given configuration.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Router registers the handlers and returns the router.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Compress(5))
	router.Use(requestLogger)
	router.Get("/api/v1/health", s.handleHealth)
	router.Post("/api/v1/decode", s.handleDecode)
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown HTTP server")
		}
	}()

	log.Info().Str("address", s.cfg.Address).Msg("Starting decode API server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
