// Package config provides centralized configuration management for the
// order cleaner. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Paths     PathsConfig
	Generator GeneratorConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Runs      RunsConfig
	Security  SecurityConfig
	Logging   LoggingConfig
}

// PathsConfig holds the file locations used by the clean and generate commands.
type PathsConfig struct {
	// Input is the messy CSV to clean and the generator's output
	Input string `env:"INPUT_PATH" default:"data/raw/ecommerce_orders_messy.csv"`

	// Output is where the cleaned CSV is written
	Output string `env:"OUTPUT_PATH" default:"data/cleaned/ecommerce_orders_cleaned.csv"`

	// Report is where the plain-text report is written
	Report string `env:"REPORT_PATH" default:"reports/cleaning_report.txt"`

	// HTMLReport is optional; no HTML report is written when empty
	HTMLReport string `env:"REPORT_HTML_PATH"`
}

// GeneratorConfig holds synthetic dataset settings.
type GeneratorConfig struct {
	// Rows is the number of rows to generate, duplicates included (default: 250)
	Rows int `env:"GENERATOR_ROWS" default:"250"`

	// Seed makes generation reproducible (default: 42)
	Seed int64 `env:"GENERATOR_SEED" default:"42"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 30s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"30s"`

	// WriteTimeout is the maximum duration for writing a response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 2m)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"2m"`

	// MaxUploadSize is the largest accepted CSV upload in bytes (default: 50MB)
	MaxUploadSize int64 `env:"UPLOAD_MAX_FILE_SIZE" default:"52428800"`
}

// DatabaseConfig holds database connection settings.
// Persistence is disabled when URL is empty.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (optional)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 10)
	MaxConns int `env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum number of connections to keep open (default: 1)
	MinConns int `env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// Enabled reports whether a database is configured.
func (c *DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// RunsConfig holds cleaning run settings.
type RunsConfig struct {
	// MaxRetained bounds the in-memory run history (default: 50)
	MaxRetained int `env:"RUNS_MAX_RETAINED" default:"50"`

	// MaxConcurrent is the maximum number of parallel runs (default: 4)
	MaxConcurrent int `env:"RUNS_MAX_CONCURRENT" default:"4"`

	// MaxWait is how long to wait for a run slot (default: 30s)
	MaxWait time.Duration `env:"RUNS_MAX_WAIT" default:"30s"`

	// Timeout is the maximum duration of one run (default: 5m)
	Timeout time.Duration `env:"RUNS_TIMEOUT" default:"5m"`
}

// SecurityConfig holds settings for the HTTP API.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// RequireAPIKey enables X-API-Key checks on /api routes (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted API keys
	APIKeys []string `env:"API_KEYS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
