package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Zero(t, cfg.Server.RateLimit, "rate limiting is off unless configured")
	assert.Equal(t, ServiceName, cfg.Daemon.Name)
	assert.Empty(t, cfg.Daemon.Home)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SVCGEN_PRIMARY__ENV", "production")
	t.Setenv("SVCGEN_SERVER__PORT", "9090")
	t.Setenv("SVCGEN_SERVER__READ_TIMEOUT", "5")
	t.Setenv("SVCGEN_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SVCGEN_DAEMON__HOME", "/opt/services")
	t.Setenv("SVCGEN_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "/opt/services", cfg.Daemon.Home)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
primary:
  env: staging
server:
  port: "7070"
  rate_limit: 0
daemon:
  name: registrar
  version: 2.3.4
  home: /srv/units
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Primary.Env)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Equal(t, "registrar", cfg.Daemon.Name)
	assert.Equal(t, "2.3.4", cfg.Daemon.Version)
	assert.Equal(t, "/srv/units", cfg.Daemon.Home)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"7070\"\n")
	t.Setenv("SVCGEN_SERVER__PORT", "6060")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Server.Port)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		errMsg   string
	}{
		{
			name:     "empty port",
			contents: "server:\n  port: \"\"\n",
			errMsg:   "config validation failed",
		},
		{
			name:     "negative rate limit",
			contents: "server:\n  rate_limit: -1\n",
			errMsg:   "config validation failed",
		},
		{
			name:     "unknown log level",
			contents: "observability:\n  logging:\n    level: loud\n",
			errMsg:   "invalid logging level",
		},
		{
			name:     "unknown log format",
			contents: "observability:\n  logging:\n    format: xml\n",
			errMsg:   "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfigFile(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load config file")
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	cfg.Logging.Level = ""
	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("SVCGEN_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("SVCGEN_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestLoadConfigListValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		env      string
		want     []string
	}{
		{
			name: "env single origin",
			env:  "https://a.example",
			want: []string{"https://a.example"},
		},
		{
			name: "env comma separated origins",
			env:  "https://a.example,https://b.example,https://c.example",
			want: []string{"https://a.example", "https://b.example", "https://c.example"},
		},
		{
			name:     "yaml list",
			contents: "server:\n  cors_allowed_origins:\n    - https://a.example\n    - https://b.example\n",
			want:     []string{"https://a.example", "https://b.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.contents != "" {
				path = writeConfigFile(t, tt.contents)
			}
			if tt.env != "" {
				t.Setenv("SVCGEN_SERVER__CORS_ALLOWED_ORIGINS", tt.env)
			}

			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Server.CORSAllowedOrigins)
		})
	}
}
