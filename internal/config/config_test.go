package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "HOST", "DB_PATH", "DB_DRIVER", "LOG_LEVEL", "LOG_FORMAT", "ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr() != ":3000" {
		t.Errorf("expected :3000, got %s", cfg.HTTP.Addr())
	}
	if cfg.Database.Path != "./data/hoard.db" || cfg.Database.Driver != "sqlite" {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if len(cfg.HTTP.AllowedOrigins) != 1 || cfg.HTTP.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected origins: %v", cfg.HTTP.AllowedOrigins)
	}
	if cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected shutdown timeout: %v", cfg.HTTP.ShutdownTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr() != "127.0.0.1:8081" {
		t.Errorf("unexpected addr: %s", cfg.HTTP.Addr())
	}
	if cfg.Database.Driver != "sqlite3" {
		t.Errorf("unexpected driver: %s", cfg.Database.Driver)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected json, got %s", cfg.Log.Format)
	}
	if len(cfg.HTTP.AllowedOrigins) != 2 || cfg.HTTP.AllowedOrigins[1] != "http://b.example" {
		t.Errorf("unexpected origins: %v", cfg.HTTP.AllowedOrigins)
	}
	if cfg.HTTP.ShutdownTimeout != 250*time.Millisecond {
		t.Errorf("unexpected shutdown timeout: %v", cfg.HTTP.ShutdownTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "abc"},
		{"PORT", "70000"},
		{"SHUTDOWN_TIMEOUT", "soon"},
		{"LOG_LEVEL", "verbose"},
		{"LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
