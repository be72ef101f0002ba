package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalysisCache provides high-level caching of advisor responses
type AnalysisCache struct {
	redis *RedisCache
	ttl   time.Duration
}

// NewAnalysisCache creates a new analysis cache
func NewAnalysisCache(redis *RedisCache, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{
		redis: redis,
		ttl:   ttl,
	}
}

// CacheKeyType represents different types of cache keys
type CacheKeyType string

const (
	// CacheKeyPortfolio is for portfolio analyses
	CacheKeyPortfolio CacheKeyType = "portfolio"
	// CacheKeyPlatforms is for platform detections
	CacheKeyPlatforms CacheKeyType = "platforms"
	// CacheKeyReport is for rendered text reports
	CacheKeyReport CacheKeyType = "report"
	// CacheKeyStaking is for wallet-independent staking opportunities
	CacheKeyStaking CacheKeyType = "staking"
)

// GenerateCacheKey generates a cache key for a given type and parameters
// Format: <type>:<param1>:<param2>:...
func (c *AnalysisCache) GenerateCacheKey(keyType CacheKeyType, params ...string) string {
	normalizedParams := make([]string, len(params))
	for i, param := range params {
		normalizedParams[i] = strings.ToLower(param)
	}

	parts := append([]string{string(keyType)}, normalizedParams...)
	return strings.Join(parts, ":")
}

// PortfolioKey generates a cache key for a wallet's portfolio analysis
// Format: portfolio:<address>
func (c *AnalysisCache) PortfolioKey(address string) string {
	return c.GenerateCacheKey(CacheKeyPortfolio, address)
}

// PlatformsKey generates a cache key for a wallet's platform detection
// Format: platforms:<address>
func (c *AnalysisCache) PlatformsKey(address string) string {
	return c.GenerateCacheKey(CacheKeyPlatforms, address)
}

// ReportKey generates a cache key for a wallet's rendered report
// Format: report:<address>
func (c *AnalysisCache) ReportKey(address string) string {
	return c.GenerateCacheKey(CacheKeyReport, address)
}

// StakingKey generates the cache key for staking opportunities. Staking
// data does not depend on a wallet so the key takes no parameters.
func (c *AnalysisCache) StakingKey() string {
	return string(CacheKeyStaking)
}

// Set stores a value in cache with the configured TTL
func (c *AnalysisCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return c.redis.Set(ctx, key, data, c.ttl)
}

// Get retrieves a value from cache and deserializes it. A miss returns
// false with no error.
func (c *AnalysisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get from cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached value: %w", err)
	}

	return true, nil
}

// Invalidate removes one or more keys from cache
func (c *AnalysisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.redis.Del(ctx, keys...)
}
