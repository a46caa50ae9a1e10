package service

import (
	"context"
	"time"

	"github.com/deppfellow/service-generator/internal/errs"
	"github.com/deppfellow/service-generator/internal/model"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// ErrCodeRegistrationMissing is the error code of a registration without content.
const ErrCodeRegistrationMissing = "REGISTRATION_CONTENT_MISSING"

// DaemonService registers service files against the process-wide Issuer.
type DaemonService struct {
	server *server.Server
	issuer *Issuer
}

// NewDaemonService constructs a DaemonService issuing ids from issuer.
func NewDaemonService(s *server.Server, issuer *Issuer) *DaemonService {
	return &DaemonService{
		server: s,
		issuer: issuer,
	}
}

// Register turns a submitted service file into a Registration.
//
// content is nil when the client supplied no service file at all; that is a
// not-found outcome and no identifier is consumed. Any non-nil content,
// including the empty string, is accepted verbatim and issued exactly one id.
func (d *DaemonService) Register(ctx context.Context, content *string) (*model.Registration, error) {
	start := time.Now()

	// Segment calls are no-ops when New Relic is disabled (nil transaction).
	defer newrelic.FromContext(ctx).StartSegment("daemon.register").End()

	if content == nil {
		d.server.Metrics.RecordNotFound(time.Since(start))
		code := ErrCodeRegistrationMissing
		return nil, errs.NewNotFoundError("missing service file content", false, &code).WithoutBody()
	}

	registration := &model.Registration{
		ID:                 d.issuer.Next(),
		ServiceFileContent: *content,
	}

	d.server.Metrics.RecordAccepted(registration.ID, time.Since(start))

	d.logger(ctx).Debug().
		Int64("id", registration.ID).
		Int("content_length", len(registration.ServiceFileContent)).
		Msg("registered service file")

	return registration, nil
}

// logger prefers the request-scoped logger stored on ctx by the HTTP layer.
func (d *DaemonService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return d.server.Logger
}

// Info describes the running service from configuration.
func (d *DaemonService) Info() model.ServiceInfo {
	return model.ServiceInfo{
		Name:    d.server.Config.Daemon.Name,
		Version: d.server.Config.Daemon.Version,
	}
}
