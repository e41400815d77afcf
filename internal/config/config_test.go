package config_test

import (
	"testing"
	"time"

	"github.com/Houeta/field-weather-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("FIELDS_ENV", "local")
	t.Setenv("FIELDS_HTTP_PORT", "8081")
	t.Setenv("WEATHER_TIMEOUT", "3s")
	t.Setenv("WEATHER_RATE_LIMIT", "0")
	t.Setenv("STATIONS_FILE", "/etc/stations.json")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_EXPORTER", "otlp")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 0, cfg.Weather.RateLimit)
	assert.Equal(t, "/etc/stations.json", cfg.StationsFile)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "otlp", cfg.Tracing.Exporter)
}

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 3001, cfg.HTTP.Port)
	assert.Equal(t, "*", cfg.HTTP.CORSOrigin)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 10, cfg.Weather.RateLimit)
	assert.InDelta(t, 1e-9, cfg.DuplicateTolerance, 0)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "field-weather", cfg.Tracing.ServiceName)
	assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0)
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("FIELDS_HTTP_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse FIELDS_HTTP_PORT from configuration, must be an integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TimeoutError(t *testing.T) {
	t.Setenv("WEATHER_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse WEATHER_TIMEOUT from configuration, must be a duration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_ToleranceError(t *testing.T) {
	t.Setenv("FIELDS_DUPLICATE_TOLERANCE", "error_value")

	assert.PanicsWithValue(t, "failed to parse FIELDS_DUPLICATE_TOLERANCE from configuration, must be a number", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TracingEnabledError(t *testing.T) {
	t.Setenv("TRACING_ENABLED", "maybe")

	assert.PanicsWithValue(t, "failed to parse TRACING_ENABLED from configuration, must be a boolean", func() {
		config.MustLoad()
	})
}

func TestPostgresConfig_ConnString(t *testing.T) {
	cfg := config.PostgresConfig{
		Host: "db", Port: "5432", User: "admin", Password: "p@ss word", Name: "fields", SSLMode: "disable",
	}

	assert.Equal(t, "postgres://admin:p%40ss%20word@db:5432/fields?sslmode=disable", cfg.ConnString())
}
