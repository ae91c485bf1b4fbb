/*
Package config loads host settings from the environment.

PURPOSE:
  The payroll rules are fixed and take no configuration. Everything here
  belongs to the hosts: which port the web form listens on, which origins
  may call the JSON API, how long the splash screen stays up, and how
  logs are written.

SOURCES (later wins):
  1. Defaults below
  2. .env file in the working directory (optional, via godotenv)
  3. Process environment
  4. Command-line flags (applied by the cli package)

VARIABLES:
  PORT                  HTTP port (default 8080)
  CORS_ALLOWED_ORIGINS  Comma-separated origins for /api
  SPLASH_DELAY          Splash duration before the form (default 2s)
  SHUTDOWN_TIMEOUT      Graceful shutdown budget (default 30s)
  LOG_LEVEL             debug | info | warn | error (default info)
  LOG_FORMAT            text | json (default text)
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port               int
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	// Presentation
	SplashDelay time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

const (
	DefaultPort            = 8080
	DefaultSplashDelay     = 2 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:               DefaultPort,
		CORSAllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		ShutdownTimeout:    DefaultShutdownTimeout,
		SplashDelay:        DefaultSplashDelay,
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function. Unset or unparsable
// values keep their defaults; Validate reports range problems.
func FromEnv(getenv func(string) string) *Config {
	cfg := Default()

	cfg.Port = envInt(getenv, "PORT", cfg.Port)
	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
	cfg.SplashDelay = envDuration(getenv, "SPLASH_DELAY", cfg.SplashDelay)
	cfg.ShutdownTimeout = envDuration(getenv, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.Port < 1 || c.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}
	if c.SplashDelay < 0 {
		errors = append(errors, fmt.Sprintf("invalid splash delay %s: must not be negative", c.SplashDelay))
	}
	if c.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %s: must be positive", c.ShutdownTimeout))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func envInt(getenv func(string) string, key string, def int) int {
	if v := getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func envDuration(getenv func(string) string, key string, def time.Duration) time.Duration {
	if v := getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
