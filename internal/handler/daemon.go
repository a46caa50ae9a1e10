package handler

import (
	"github.com/deppfellow/service-generator/internal/model"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/deppfellow/service-generator/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// DaemonHandler serves the service file registration endpoints.
type DaemonHandler struct {
	Handler
	daemon *service.DaemonService
}

// NewDaemonHandler constructs a DaemonHandler backed by the daemon service.
func NewDaemonHandler(s *server.Server, daemon *service.DaemonService) *DaemonHandler {
	return &DaemonHandler{
		Handler: NewHandler(s),
		daemon:  daemon,
	}
}

// Register issues an identifier for the submitted service file.
//
// A missing register parameter surfaces as a bodiless 404 from the service.
func (h *DaemonHandler) Register(c echo.Context, req *RegisterRequest) (*model.Registration, error) {
	registration, err := h.daemon.Register(c.Request().Context(), req.ServiceFileContent)
	if err != nil {
		return nil, err
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute("registration.id", registration.ID)
	}

	return registration, nil
}

// Info returns the configured service name and version.
func (h *DaemonHandler) Info(c echo.Context, req *InfoRequest) (model.ServiceInfo, error) {
	return h.daemon.Info(), nil
}
