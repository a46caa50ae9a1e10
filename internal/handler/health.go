package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/service-generator/internal/middleware"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes an endpoint that load balancers and uptime monitors
// can use to verify the service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns the service status.
//
// Response includes:
//   - overall status
//   - timestamp (UTC) and uptime
//   - environment, service name and version (from config)
//   - checks map (issuer, new_relic)
//
// The service has no external dependencies, so it is healthy whenever it can answer.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	newRelicStatus := "disabled"
	if h.server.LoggerService.GetApplication() != nil {
		newRelicStatus = "enabled"
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"environment": h.server.Config.Primary.Env,
		"service":     h.server.Config.Daemon.Name,
		"version":     h.server.Config.Daemon.Version,
		"checks": map[string]interface{}{
			"issuer": map[string]interface{}{
				"status": "healthy",
			},
			"new_relic": map[string]interface{}{
				"status": newRelicStatus,
			},
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	// If JSON write fails, record telemetry and return a wrapped error.
	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent(
				"HealthCheckError",
				map[string]interface{}{
					"check_type":    "response",
					"operation":     "health_check",
					"error_type":    "json_response_error",
					"error_message": err.Error(),
				},
			)
		}

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
