package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m token TTL, got %v", cfg.TokenTTL)
	}
	if cfg.StoreDriver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %q", cfg.StoreDriver)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("expected throttle disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Login.MaxAttempts != 5 || cfg.Login.Window != 15*time.Minute {
		t.Fatalf("unexpected login defaults: %+v", cfg.Login)
	}
	if cfg.Redis.PoolSize != 10 || cfg.Redis.Timeout != 5*time.Second {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if cfg.Admin.Enabled() {
		t.Fatalf("expected no admin seed by default")
	}
}

func TestLoadWith_RequiresSecret(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing")
	}
}

func TestLoadWith_RejectsUnknownDriver(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "s3cret",
		"STORE_DRIVER": "cassandra",
	}))
	if err == nil || !strings.Contains(err.Error(), "STORE_DRIVER") {
		t.Fatalf("expected STORE_DRIVER error, got %v", err)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "s3cret",
		"TOKEN_TTL":    "5m",
		"STORE_DRIVER": "sqlite",
		"DATABASE_URL": "file:cogip.db",
		"REDIS_ADDR":      "localhost:6379",
		"REDIS_POOL_SIZE": "32",
		"REDIS_TIMEOUT":   "2s",
		"ADMIN_USERNAME":  "root",
		"ADMIN_PASSWORD":  "changeme",
		"ENV":             "production",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.TokenTTL != 5*time.Minute || cfg.StoreDriver != DriverSQLite || cfg.Database.URL != "file:cogip.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production env")
	}
	if cfg.Redis.PoolSize != 32 || cfg.Redis.Timeout != 2*time.Second {
		t.Fatalf("redis overrides not applied: %+v", cfg.Redis)
	}
	if !cfg.Admin.Enabled() || cfg.Admin.Username != "root" || cfg.Admin.Password != "changeme" {
		t.Fatalf("admin overrides not applied: %+v", cfg.Admin)
	}
}

func TestLoadWith_AdminNeedsBothFields(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"username only": {"JWT_SECRET": "s3cret", "ADMIN_USERNAME": "root"},
		"password only": {"JWT_SECRET": "s3cret", "ADMIN_PASSWORD": "changeme"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWith(context.Background(), envconfig.MapLookuper(env))
			if err == nil || !strings.Contains(err.Error(), "ADMIN_USERNAME") {
				t.Fatalf("expected admin config error, got %v", err)
			}
		})
	}
}

func TestLoadWith_RejectsBadRedisTimeout(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":    "s3cret",
		"REDIS_TIMEOUT": "0s",
	}))
	if err == nil || !strings.Contains(err.Error(), "REDIS_TIMEOUT") {
		t.Fatalf("expected REDIS_TIMEOUT error, got %v", err)
	}
}
