package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/service-generator/internal/config"
)

func TestNewRequiresDependencies(t *testing.T) {
	logger := zerolog.Nop()

	_, err := New(nil, &logger, nil)
	assert.Error(t, err)

	_, err = New(config.DefaultConfig(), nil, nil)
	assert.Error(t, err)
}

func TestNewBuildsContainer(t *testing.T) {
	logger := zerolog.Nop()
	s, err := New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	assert.NotNil(t, s.Metrics)
	assert.False(t, s.StartedAt.IsZero())
	assert.Nil(t, s.LoggerService.GetApplication())
}

func TestStartWithoutSetup(t *testing.T) {
	logger := zerolog.Nop()
	s, err := New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServerAppliesConfig(t *testing.T) {
	logger := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Server.Port = "9999"
	cfg.Server.ReadTimeout = 3

	s, err := New(cfg, &logger, nil)
	require.NoError(t, err)

	s.SetupHTTPServer(http.NotFoundHandler())
	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":9999", s.httpServer.Addr)
	assert.Equal(t, "3s", s.httpServer.ReadTimeout.String())

	// Shutting down a server that never started is a no-op.
	assert.NoError(t, s.Shutdown(context.Background()))
}
