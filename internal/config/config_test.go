package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the aliased variables so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Database.OperationTimeout)
	assert.False(t, cfg.Database.IsConfigured())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_Aliases(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "nettoyage")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "nettoyage", cfg.Database.Name)
	assert.True(t, cfg.Database.IsConfigured())
}

func TestLoadConfig_PrefixedKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("NETTOYAGE_PRIMARY.ENV", "production")
	t.Setenv("NETTOYAGE_SERVER.READ_TIMEOUT", "5")
	t.Setenv("NETTOYAGE_SERVER.CORS_ALLOWED_ORIGINS", "https://a.ch,https://b.ch")
	t.Setenv("NETTOYAGE_OBSERVABILITY.LOGGING.LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://a.ch", "https://b.ch"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("NETTOYAGE_OBSERVABILITY.LOGGING.LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("PORT"))
	assert.Equal(t, "database.url", envKey("DATABASE_URL"))
	assert.Equal(t, "server.idle_timeout", envKey("NETTOYAGE_SERVER.IDLE_TIMEOUT"))
	assert.Empty(t, envKey("HOME"))
}

func TestEnvValue_SplitsLists(t *testing.T) {
	key, value := envValue("NETTOYAGE_SERVER.CORS_ALLOWED_ORIGINS", " https://a.ch , https://b.ch,, ")
	assert.Equal(t, "server.cors_allowed_origins", key)
	assert.Equal(t, []string{"https://a.ch", "https://b.ch"}, value)

	key, value = envValue("NETTOYAGE_SERVER.READ_TIMEOUT", "5")
	assert.Equal(t, "server.read_timeout", key)
	assert.Equal(t, "5", value)

	key, _ = envValue("HOME", "/root")
	assert.Empty(t, key)
}

func TestLoadConfig_SingleOrigin(t *testing.T) {
	clearEnv(t)
	t.Setenv("NETTOYAGE_SERVER.CORS_ALLOWED_ORIGINS", "https://nettoyage-lausanne.ch")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://nettoyage-lausanne.ch"}, cfg.Server.CORSAllowedOrigins)
}

func TestGetLogLevel(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Level = ""
	assert.Equal(t, "debug", c.GetLogLevel())

	c.Environment = "production"
	assert.Equal(t, "info", c.GetLogLevel())

	c.Logging.Level = "error"
	assert.Equal(t, "error", c.GetLogLevel())
}
