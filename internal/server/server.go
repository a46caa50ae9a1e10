// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - Prometheus metrics
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/service-generator/internal/config"
	"github.com/deppfellow/service-generator/internal/metrics"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/service-generator/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; that lives in httpServer and is
// configured by SetupHTTPServer.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	Metrics *metrics.Metrics

	// StartedAt is reported as uptime by the status endpoint.
	StartedAt time.Time

	httpServer *http.Server
}

// New constructs a Server. Nothing is started yet.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	logger.Debug().
		Str("name", cfg.Daemon.Name).
		Str("version", cfg.Daemon.Version).
		Str("home", cfg.Daemon.Home).
		Msg("service configuration")

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Metrics:       metrics.New(),
		StartedAt:     time.Now(),
	}, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores whole seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
//
// It requires SetupHTTPServer to be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests until ctx expires, then flushes New Relic.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
