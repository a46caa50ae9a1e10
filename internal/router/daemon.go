package router

import (
	"net/http"

	"github.com/deppfellow/service-generator/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerDaemonRoutes registers the service file registration API under /daemon.
func registerDaemonRoutes(r *echo.Echo, h *handler.Handlers) {
	daemon := r.Group("/daemon")

	daemon.POST("", handler.Handle(
		h.Daemon.Handler,
		h.Daemon.Register,
		http.StatusAccepted,
		handler.NewRegisterRequest,
	))

	daemon.GET("/info", handler.Handle(
		h.Daemon.Handler,
		h.Daemon.Info,
		http.StatusOK,
		handler.NewInfoRequest,
	))
}
