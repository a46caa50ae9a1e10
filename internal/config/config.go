// Package config manages the service configuration.
//
// It reads an optional YAML file and environment variables (a `.env`
// file is loaded first when present), maps them into structured Go
// types and validates that required values are present so the service
// fails fast on bad configuration.
//
// Responsibilities:
//   - Provide defaults for every block so the service runs with no config at all.
//   - Overlay the YAML config file, then environment variables.
//   - Validate required values (struct tags + custom rules).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

/*
	Key mapping:
	- Env vars are read using the prefix SVCGEN_
	- Keys are lowercased and the prefix is removed
	- A double underscore marks nesting, a single underscore stays part of the key
	  e.g. SVCGEN_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout

	The YAML file uses the same key names:

		server:
		  port: "8080"
		daemon:
		  home: /opt/services
*/

const (
	// EnvPrefix is the prefix every environment variable must carry.
	EnvPrefix = "SVCGEN_"

	// ServiceName identifies this service in logs, traces and metrics.
	ServiceName = "service-generator"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Daemon        DaemonConfig         `koanf:"daemon" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the number of requests per second allowed per client IP.
	// Zero, the default, disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DaemonConfig describes the registration service itself.
//
// Name and Version are served by the info endpoint. Home is the directory
// service units would be managed under; registration never reads it, it
// is only reported at startup.
type DaemonConfig struct {
	Name    string `koanf:"name" validate:"required"`
	Version string `koanf:"version" validate:"required"`
	Home    string `koanf:"home"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit:          0,
		},
		Daemon: DaemonConfig{
			Name:    ServiceName,
			Version: "0.1.0",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration, validates it and returns the result.
//
// Behavior summary:
//   - Starts from DefaultConfig
//   - Overlays the YAML file at path (skipped when path is empty)
//   - Overlays env vars with prefix SVCGEN_
//   - Validates required config blocks/fields
//   - Forces observability service name + environment
//   - Validates observability config as well
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal over the defaults: keys that are absent keep their default value.
	mainConfig := DefaultConfig()
	if err := k.UnmarshalWithConf("", mainConfig, unmarshalConf(mainConfig)); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// unmarshalConf mirrors koanf's default decoder and additionally splits
// comma separated strings into slices, so list keys can be set from the
// environment: SVCGEN_SERVER__CORS_ALLOWED_ORIGINS=https://a.example,https://b.example
func unmarshalConf(out *Config) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           out,
			WeaklyTypedInput: true,
		},
	}
}

// envKey maps SVCGEN_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
