package handler

import (
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/deppfellow/service-generator/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Daemon  *DaemonHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Daemon:  NewDaemonHandler(s, services.Daemon),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
