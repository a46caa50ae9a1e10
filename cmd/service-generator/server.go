package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/service-generator/internal/config"
	"github.com/deppfellow/service-generator/internal/handler"
	"github.com/deppfellow/service-generator/internal/logger"
	"github.com/deppfellow/service-generator/internal/router"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/deppfellow/service-generator/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server [config-file]",
		Short: "Run the HTTP server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath(args))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg *config.Config) error {
	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	services, err := service.NewServices(srv)
	if err != nil {
		loggerService.Shutdown()
		return fmt.Errorf("failed to create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			loggerService.Shutdown()
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
