package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Sui.RPCPrimary == "" {
		t.Error("Sui.RPCPrimary should have a default endpoint")
	}
	if cfg.Sui.RequestTimeout != 15*time.Second {
		t.Errorf("Sui.RequestTimeout = %v, want %v", cfg.Sui.RequestTimeout, 15*time.Second)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should default to false")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SUI_RPC_PRIMARY", "https://fullnode.testnet.sui.io:443")
	t.Setenv("SUI_REQUEST_TIMEOUT", "5s")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("RATE_LIMIT_FREE_TIER", "2")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Sui.RPCPrimary != "https://fullnode.testnet.sui.io:443" {
		t.Errorf("Sui.RPCPrimary = %q", cfg.Sui.RPCPrimary)
	}
	if cfg.Sui.RequestTimeout != 5*time.Second {
		t.Errorf("Sui.RequestTimeout = %v, want 5s", cfg.Sui.RequestTimeout)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be true")
	}
	if cfg.Cache.TTL != time.Minute {
		t.Errorf("Cache.TTL = %v, want 1m", cfg.Cache.TTL)
	}
	if cfg.RateLimit.FreeTierRPS != 2 {
		t.Errorf("RateLimit.FreeTierRPS = %d, want 2", cfg.RateLimit.FreeTierRPS)
	}
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SUI_REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("CACHE_ENABLED", "not-a-bool")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Sui.RequestTimeout != 15*time.Second {
		t.Errorf("invalid duration should fall back to default, got %v", cfg.Sui.RequestTimeout)
	}
	if cfg.Cache.DB != 0 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.Cache.DB)
	}
	if cfg.Cache.Enabled {
		t.Error("invalid bool should fall back to default false")
	}
}

func TestCacheConfig_Addr(t *testing.T) {
	cfg := &CacheConfig{Host: "redis.internal", Port: "6380"}
	if got := cfg.Addr(); got != "redis.internal:6380" {
		t.Errorf("Addr() = %q, want %q", got, "redis.internal:6380")
	}
}
