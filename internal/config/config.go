// Package config provides configuration management for the Sui advisor
// application. It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Sui       SuiConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Host string
}

// SuiConfig holds Sui fullnode RPC configuration
type SuiConfig struct {
	// RPCPrimary is the primary fullnode JSON-RPC endpoint
	RPCPrimary string
	// RPCSecondary is an optional fallback endpoint used when the primary
	// cannot be reached at startup
	RPCSecondary string
	// RequestTimeout bounds each individual RPC call
	RequestTimeout time.Duration
	// MaxObjectPages caps owned-object pagination per analysis call
	MaxObjectPages int
}

// CacheConfig holds the serving-layer Redis cache configuration.
// The advisory core never touches the cache; it only shields the HTTP
// handlers from repeated fullnode round trips.
type CacheConfig struct {
	Enabled        bool
	Host           string
	Port           string
	Password       string
	DB             int
	MaxConnections int
	TTL            time.Duration
}

// RateLimitConfig holds per-tier rate limiting configuration
type RateLimitConfig struct {
	FreeTierRPS int
	PaidTierRPS int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Addr returns the host:port address for the Redis cache
func (c *CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// LoadConfig loads configuration from .env file and environment variables
func LoadConfig() (*Config, error) {
	// Load .env file (optional in production)
	if err := godotenv.Load(); err != nil {
		// .env file is optional - environment variables can be set directly
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Sui: SuiConfig{
			RPCPrimary:     getEnv("SUI_RPC_PRIMARY", "https://fullnode.mainnet.sui.io:443"),
			RPCSecondary:   getEnv("SUI_RPC_SECONDARY", ""),
			RequestTimeout: getEnvAsDuration("SUI_REQUEST_TIMEOUT", 15*time.Second),
			MaxObjectPages: getEnvAsInt("SUI_MAX_OBJECT_PAGES", 10),
		},
		Cache: CacheConfig{
			Enabled:        getEnvAsBool("CACHE_ENABLED", false),
			Host:           getEnv("REDIS_HOST", "localhost"),
			Port:           getEnv("REDIS_PORT", "6379"),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             getEnvAsInt("REDIS_DB", 0),
			MaxConnections: getEnvAsInt("REDIS_MAX_CONNECTIONS", 50),
			TTL:            getEnvAsDuration("CACHE_TTL", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			FreeTierRPS: getEnvAsInt("RATE_LIMIT_FREE_TIER", 5),
			PaidTierRPS: getEnvAsInt("RATE_LIMIT_PAID_TIER", 50),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return config, nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean with a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration with a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
