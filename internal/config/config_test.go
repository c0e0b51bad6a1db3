package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if !cfg.Server.IsDevelopment() {
		t.Error("expected development environment by default")
	}
	if cfg.Mongo.Database != "storeapi" {
		t.Errorf("expected default mongo database storeapi, got %s", cfg.Mongo.Database)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limiting should be disabled by default")
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("expected one minute window, got %s", cfg.RateLimit.Window)
	}
	if cfg.Pagination.DefaultSize != 50 || cfg.Pagination.MaxSize != 100 {
		t.Errorf("unexpected pagination defaults: %+v", cfg.Pagination)
	}
	if cfg.Server.AllowedOrigins != nil {
		t.Errorf("expected no allowed origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("DB_HOST", "postgres.internal")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("PAGE_DEFAULT_SIZE", "500")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := fromViper(v)

	if cfg.Server.IsDevelopment() {
		t.Error("expected production environment")
	}
	if cfg.Database.Host != "postgres.internal" {
		t.Errorf("expected overridden DB host, got %s", cfg.Database.Host)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("expected rate limiting enabled")
	}
	// A default above the cap is clamped to it
	if cfg.Pagination.DefaultSize != 100 {
		t.Errorf("expected default size clamped to 100, got %d", cfg.Pagination.DefaultSize)
	}
}
