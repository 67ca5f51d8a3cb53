// Package config loads relay configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all relay configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	Debug           bool          `envconfig:"SERVER_DEBUG" default:"false"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `envconfig:"DB_PATH" default:"./data/relay.db"`
}

// MailConfig holds SMTP settings. With no host configured, keys are
// written to the log instead of mailed; development only.
type MailConfig struct {
	SMTPHost string `envconfig:"SMTP_HOST" default:""`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	From     string `envconfig:"SMTP_FROM" default:"sync@filameter.com"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
}

// RateLimitConfig holds the per-IP request budget.
type RateLimitConfig struct {
	Requests int           `envconfig:"RATELIMIT_REQUESTS" default:"60"`
	Window   time.Duration `envconfig:"RATELIMIT_WINDOW" default:"1m"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
