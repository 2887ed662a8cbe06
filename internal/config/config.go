// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types (struct), and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
//   - Provide defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Key mapping rules:
	- PORT, DATABASE_URL and DATABASE_NAME are read verbatim. The hosting
	  platform and the website deployment set these names, so they stay bare.
	- Every other setting is namespaced with the NETTOYAGE_ prefix. Keys are
	  lowercased, the prefix is removed and "." marks nesting:
	  NETTOYAGE_SERVER.READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
	- Anything else in the environment is ignored.
*/

// EnvPrefix namespaces every non-aliased variable.
const EnvPrefix = "NETTOYAGE_"

// DefaultPort is used when PORT is not set.
const DefaultPort = "8000"

// envAliases maps bare variable names onto koanf keys.
var envAliases = map[string]string{
	"PORT":          "server.port",
	"DATABASE_URL":  "database.url",
	"DATABASE_NAME": "database.name",
}

// listKeys are the koanf keys whose value is a comma-separated list.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator after
// defaults are applied.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains the MongoDB connection parameters.
//
// URL and Name are deliberately optional: when either is missing the
// application still starts and runs without a document store.
type DatabaseConfig struct {
	URL              string `koanf:"url"`
	Name             string `koanf:"name"`
	ConnectTimeout   int    `koanf:"connect_timeout" validate:"min=1"`
	OperationTimeout int    `koanf:"operation_timeout" validate:"min=1"`
}

// IsConfigured reports whether both connection settings are present.
func (d DatabaseConfig) IsConfigured() bool {
	return d.URL != "" && d.Name != ""
}

// envKey converts a raw environment variable name into a koanf key.
// An empty result tells the env provider to skip the variable.
func envKey(s string) string {
	if key, ok := envAliases[s]; ok {
		return key
	}
	if strings.HasPrefix(s, EnvPrefix) {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	return ""
}

// envValue maps a variable onto its koanf key and splits list values.
func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if key == "" || !listKeys[key] {
		return key, value
	}

	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// applyDefaults fills every zero value that has a sensible fallback.
func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "development"
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	// The marketing site may be served from several domains and previews,
	// so CORS stays fully open unless an operator narrows it.
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Database.ConnectTimeout == 0 {
		cfg.Database.ConnectTimeout = 10
	}
	if cfg.Database.OperationTimeout == 0 {
		cfg.Database.OperationTimeout = 10
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}
	if cfg.Observability.Logging.Level == "" {
		cfg.Observability.Logging.Level = "info"
	}
	if cfg.Observability.Logging.Format == "" {
		cfg.Observability.Logging.Format = "json"
	}
	if cfg.Observability.HealthChecks.Timeout == 0 {
		cfg.Observability.HealthChecks.Timeout = DefaultObservabilityConfig().HealthChecks.Timeout
	}

	// Service name and environment are always derived, never configured,
	// so logs and traces stay consistently labelled.
	cfg.Observability.ServiceName = ServiceName
	cfg.Observability.Environment = cfg.Primary.Env
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	// An empty prefix hands every variable to envValue, which keeps only the
	// aliases and the NETTOYAGE_ namespace.
	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	applyDefaults(mainConfig)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
