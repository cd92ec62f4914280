// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Log      LogConfig
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Host            string
	Port            int
	AllowedOrigins  []string      // CORS origins; "*" allows any
	ShutdownTimeout time.Duration // grace period for in-flight requests
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path   string // SQLite database file path
	Driver string // sqlite (modernc) or sqlite3 (mattn)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	port, err := getEnvInt("PORT", 3000)
	if err != nil {
		return nil, err
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}

	shutdown, err := getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Host:            getEnv("HOST", ""),
			Port:            port,
			AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "*")),
			ShutdownTimeout: shutdown,
		},
		Database: DatabaseConfig{
			Path:   getEnv("DB_PATH", "./data/hoard.db"),
			Driver: getEnv("DB_DRIVER", "sqlite"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn or error", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.Log.Format)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return intVal, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{HTTP: %s, DB: %s (%s), Log: %s/%s}",
		c.HTTP.Addr(), c.Database.Path, c.Database.Driver, c.Log.Level, c.Log.Format)
}
