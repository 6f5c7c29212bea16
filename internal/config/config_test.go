package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
	assert.True(t, cfg.Observability.NewRelic.AppLogForwardingEnabled)
	assert.True(t, cfg.Observability.NewRelic.DistributedTracingEnabled)
	assert.False(t, cfg.Observability.NewRelic.DebugLogging)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CPF_VALIDATOR_PRIMARY__ENV", "production")
	t.Setenv("CPF_VALIDATOR_SERVER__PORT", "9090")
	t.Setenv("CPF_VALIDATOR_SERVER__READ_TIMEOUT", "5")
	t.Setenv("CPF_VALIDATOR_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CPF_VALIDATOR_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("CPF_VALIDATOR_OBSERVABILITY__NEW_RELIC__DISTRIBUTED_TRACING_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.False(t, cfg.Observability.NewRelic.DistributedTracingEnabled)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("CPF_VALIDATOR_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("CPF_VALIDATOR_SERVER__IDLE_TIMEOUT", "0")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("CPF_VALIDATOR_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("CPF_VALIDATOR_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestObservabilityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *ObservabilityConfig) {}},
		{name: "missing service name", mutate: func(c *ObservabilityConfig) { c.ServiceName = "" }, wantErr: "service_name is required"},
		{name: "bad level", mutate: func(c *ObservabilityConfig) { c.Logging.Level = "trace" }, wantErr: "invalid logging level"},
		{name: "bad format", mutate: func(c *ObservabilityConfig) { c.Logging.Format = "xml" }, wantErr: "invalid logging format"},
		{name: "console format", mutate: func(c *ObservabilityConfig) { c.Logging.Format = "console" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultObservabilityConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	c := &ObservabilityConfig{Environment: "production"}
	assert.Equal(t, "info", c.GetLogLevel())

	c.Environment = "development"
	assert.Equal(t, "debug", c.GetLogLevel())

	c.Logging.Level = "error"
	assert.Equal(t, "error", c.GetLogLevel())
}
