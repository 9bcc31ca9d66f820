package lib

import (
	"time"
)

// Cache is the shared cache surface: session markers, captcha answers and
// hot catalog reads all go through it. Backed by Redis or process memory.
type Cache interface {
	// Set stores a value with expiration
	Set(key string, value interface{}, expiration time.Duration) error

	// Get retrieves a value by key
	Get(key string, value interface{}) error

	// Delete removes keys from cache
	Delete(keys ...string) (bool, error)

	// Check verifies if keys exist
	Check(keys ...string) (bool, error)

	// Close closes the cache connection
	Close() error
}

// NewCache creates a cache instance based on configuration.
// Type "redis" returns RedisCache, anything else the in-memory fallback.
func NewCache(config Config, logger Logger) Cache {
	if config.Cache.IsRedis() {
		return NewRedisCache(config, logger)
	}
	return NewMemoryCache(config, logger)
}
