package config

import (
	"fmt"
)

// ObservabilityConfig groups all configuration related to telemetry and runtime visibility:
//   - logging settings (format, level)
//   - APM/tracing provider settings (New Relic)
//
// It is embedded under Config.Observability and is optional at the
// root level. If omitted, defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// It is always overwritten with config.ServiceName.
	ServiceName string `koanf:"service_name"`

	// Environment is a label used to split telemetry by environment.
	// It is always overwritten with Primary.Env.
	Environment string `koanf:"environment"`

	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
	NewRelic NewRelicConfig `koanf:"new_relic" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output format for logs ("json" or "console").
	// JSON is only emitted in production; other environments log to the console.
	Format string `koanf:"format"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means New Relic is not configured and the agent is
// never started.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// DefaultObservabilityConfig provides the defaults used when
// Config.Observability is not provided.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // Disabled by default to avoid mixed log formats
		},
	}
}

// Validate applies custom validation rules that go beyond struct tags.
//
// Returns nil if configuration is valid, otherwise an error describing
// the first validation failure.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"":      true, // resolved per environment by GetLogLevel
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Logging.Format)
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// When no level is set, production defaults to "info" and every other
// environment to "debug".
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
