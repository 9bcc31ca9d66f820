package lib

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/pawhub/pawhub/errors"
)

// cacheItem is one stored value with its expiration
type cacheItem struct {
	value      []byte
	expiration int64 // unix nanoseconds, 0 means no expiration
}

func (item cacheItem) isExpired() bool {
	if item.expiration == 0 {
		return false
	}
	return time.Now().UnixNano() > item.expiration
}

// MemoryCache implements Cache in process memory; the default when no
// Redis is configured. Values round-trip through JSON so behavior matches
// the Redis implementation.
type MemoryCache struct {
	items  sync.Map
	prefix string
	logger Logger
	stopCh chan struct{}
}

// NewMemoryCache creates a new memory cache instance
func NewMemoryCache(config Config, logger Logger) *MemoryCache {
	mc := &MemoryCache{
		prefix: config.Cache.KeyPrefix,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	go mc.cleanupLoop()

	logger.Zap.Info("Memory cache initialized")
	return mc
}

// cleanupLoop periodically drops expired items
func (m *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.items.Range(func(key, value interface{}) bool {
				if item, ok := value.(cacheItem); ok && item.isExpired() {
					m.items.Delete(key)
				}
				return true
			})
		case <-m.stopCh:
			return
		}
	}
}

func (m *MemoryCache) wrapperKey(key string) string {
	if m.prefix == "" {
		return key
	}
	return m.prefix + ":" + key
}

// Set stores a value with expiration
func (m *MemoryCache) Set(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var expireAt int64
	if expiration > 0 {
		expireAt = time.Now().Add(expiration).UnixNano()
	}

	m.items.Store(m.wrapperKey(key), cacheItem{value: data, expiration: expireAt})
	return nil
}

// Get retrieves a value by key
func (m *MemoryCache) Get(key string, value interface{}) error {
	v, ok := m.items.Load(m.wrapperKey(key))
	if !ok {
		return errors.CacheKeyNoExist
	}

	item := v.(cacheItem)
	if item.isExpired() {
		m.items.Delete(m.wrapperKey(key))
		return errors.CacheKeyNoExist
	}

	return json.Unmarshal(item.value, value)
}

// Delete removes keys from cache
func (m *MemoryCache) Delete(keys ...string) (bool, error) {
	deleted := false
	for _, key := range keys {
		if _, ok := m.items.LoadAndDelete(m.wrapperKey(key)); ok {
			deleted = true
		}
	}
	return deleted, nil
}

// Check verifies if keys exist
func (m *MemoryCache) Check(keys ...string) (bool, error) {
	for _, key := range keys {
		v, ok := m.items.Load(m.wrapperKey(key))
		if !ok {
			return false, nil
		}
		if item := v.(cacheItem); item.isExpired() {
			m.items.Delete(m.wrapperKey(key))
			return false, nil
		}
	}
	return true, nil
}

// Close stops the cleanup goroutine
func (m *MemoryCache) Close() error {
	close(m.stopCh)
	return nil
}
