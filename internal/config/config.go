package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the field weather service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - HTTP: Settings of the public HTTP server.
// - StationsFile: Optional path of a station directory replacing the bundled one.
// - Weather: Settings of the outbound weather client.
// - DuplicateTolerance: Per-axis tolerance in degrees of the duplicate geometry check.
// - Database: Configuration settings for the PostgreSQL database.
// - Tracing: OpenTelemetry exporter settings.
type Config struct {
	Env                string
	HTTP               HTTPConfig
	StationsFile       string
	Weather            WeatherConfig
	DuplicateTolerance float64
	Database           PostgresConfig
	Tracing            TracingConfig
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Port            int
	CORSOrigin      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration // Grace period for in-flight requests on shutdown
}

// WeatherConfig configures requests to the station endpoints.
type WeatherConfig struct {
	Timeout   time.Duration // Upper bound of one upstream request
	RateLimit int           // Requests per second, zero disables limiting
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
	SSLMode  string // SSLMode is passed through as the sslmode parameter.
}

// TracingConfig configures the OpenTelemetry tracer provider.
type TracingConfig struct {
	Enabled     bool
	Exporter    string // stdout or otlp
	Endpoint    string // OTLP gRPC endpoint, host:port
	ServiceName string
	SampleRatio float64
}

// ConnString returns the postgres:// URL of the database.
func (c PostgresConfig) ConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}

	return u.String()
}

// MustLoad reads the configuration from the environment and an optional .env file.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		Env: v.GetString("FIELDS_ENV"),
		HTTP: HTTPConfig{
			Port:            mustInt(v, "FIELDS_HTTP_PORT"),
			CORSOrigin:      v.GetString("FIELDS_CORS_ORIGIN"),
			ReadTimeout:     mustDuration(v, "FIELDS_READ_TIMEOUT"),
			WriteTimeout:    mustDuration(v, "FIELDS_WRITE_TIMEOUT"),
			ShutdownTimeout: mustDuration(v, "FIELDS_SHUTDOWN_TIMEOUT"),
		},
		StationsFile: v.GetString("STATIONS_FILE"),
		Weather: WeatherConfig{
			Timeout:   mustDuration(v, "WEATHER_TIMEOUT"),
			RateLimit: mustInt(v, "WEATHER_RATE_LIMIT"),
		},
		DuplicateTolerance: mustFloat(v, "FIELDS_DUPLICATE_TOLERANCE"),
		Database: PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Tracing: TracingConfig{
			Enabled:     mustBool(v, "TRACING_ENABLED"),
			Exporter:    v.GetString("TRACING_EXPORTER"),
			Endpoint:    v.GetString("TRACING_ENDPOINT"),
			ServiceName: v.GetString("TRACING_SERVICE_NAME"),
			SampleRatio: mustFloat(v, "TRACING_SAMPLE_RATIO"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("FIELDS_ENV", "production")
	v.SetDefault("FIELDS_HTTP_PORT", "3001")
	v.SetDefault("FIELDS_CORS_ORIGIN", "*")
	v.SetDefault("FIELDS_READ_TIMEOUT", "5s")
	v.SetDefault("FIELDS_WRITE_TIMEOUT", "15s")
	v.SetDefault("FIELDS_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("STATIONS_FILE", "")
	v.SetDefault("WEATHER_TIMEOUT", "10s")
	v.SetDefault("WEATHER_RATE_LIMIT", "10")
	v.SetDefault("FIELDS_DUPLICATE_TOLERANCE", "1e-9")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USERNAME", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("TRACING_ENABLED", "false")
	v.SetDefault("TRACING_EXPORTER", "stdout")
	v.SetDefault("TRACING_ENDPOINT", "")
	v.SetDefault("TRACING_SERVICE_NAME", "field-weather")
	v.SetDefault("TRACING_SAMPLE_RATIO", "1.0")
}

func mustInt(v *viper.Viper, key string) int {
	value, err := strconv.Atoi(v.GetString(key))
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be an integer")
	}
	return value
}

func mustFloat(v *viper.Viper, key string) float64 {
	value, err := strconv.ParseFloat(v.GetString(key), 64)
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be a number")
	}
	return value
}

func mustBool(v *viper.Viper, key string) bool {
	value, err := strconv.ParseBool(v.GetString(key))
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be a boolean")
	}
	return value
}

func mustDuration(v *viper.Viper, key string) time.Duration {
	value, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be a duration")
	}
	return value
}
