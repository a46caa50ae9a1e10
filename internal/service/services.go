package service

import (
	"github.com/deppfellow/service-generator/internal/server"
)

// Services groups the business services handed to the handler layer.
type Services struct {
	Daemon *DaemonService
}

// NewServices builds every service. The Issuer is created here, once per
// process, and shared by everything that registers service files.
func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		Daemon: NewDaemonService(s, NewIssuer()),
	}, nil
}
