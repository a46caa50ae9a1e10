package router

import (
	"github.com/deppfellow/service-generator/internal/handler"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the daemon API:
// health, Prometheus metrics, and the OpenAPI docs with their static assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
