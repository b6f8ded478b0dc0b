package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != 3000 {
		t.Errorf("expected default HTTP port 3000, got %d", cfg.HTTPPort)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("expected default database host localhost, got %q", cfg.Database.Host)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("expected default cache TTL 5m, got %v", cfg.CacheTTL)
	}
	if cfg.CacheEnabled() {
		t.Error("cache should be disabled when REDIS_ADDR is unset")
	}
	if cfg.MessagingEnabled() {
		t.Error("messaging should be disabled when RABBITMQ_HOST is unset")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "restaurant_test")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RABBITMQ_HOST", "rabbitmq")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("expected HTTP port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("expected database port 5433, got %d", cfg.Database.Port)
	}
	if !cfg.CacheEnabled() {
		t.Error("cache should be enabled when REDIS_ADDR is set")
	}
	if !cfg.MessagingEnabled() {
		t.Error("messaging should be enabled when RABBITMQ_HOST is set")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != 3000 {
		t.Errorf("expected fallback to default port 3000, got %d", cfg.HTTPPort)
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db",
			Port:     5432,
			User:     "app",
			Password: "secret",
			Name:     "restaurant_ops",
			SSLMode:  "disable",
		},
	}
	want := "postgres://app:secret@db:5432/restaurant_ops?sslmode=disable"
	if got := cfg.DatabaseURL(); got != want {
		t.Errorf("DatabaseURL() = %q, want %q", got, want)
	}
}
