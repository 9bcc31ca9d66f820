package petsource

import (
	"sync"
	"time"
)

// refreshMargin renews tokens slightly before they expire so an in-flight
// request never carries a token that dies mid-call.
const refreshMargin = 30 * time.Second

// tokenCache holds the current access token. It replaces the mutable
// module-level token variables of the original proxy: state is explicit,
// guarded by a mutex, and the clock is injected so expiry is testable.
type tokenCache struct {
	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
	now         func() time.Time
}

func newTokenCache(now func() time.Time) *tokenCache {
	return &tokenCache{now: now}
}

// get returns the cached token, calling fetch for a fresh one when the
// cache is empty or about to expire. Concurrent callers coalesce on the
// mutex so at most one fetch runs at a time.
func (t *tokenCache) get(fetch func() (token string, ttl time.Duration, err error)) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.accessToken != "" && t.now().Add(refreshMargin).Before(t.expiresAt) {
		return t.accessToken, nil
	}

	token, ttl, err := fetch()
	if err != nil {
		return "", err
	}

	t.accessToken = token
	t.expiresAt = t.now().Add(ttl)
	return token, nil
}

// invalidate drops the cached token, forcing the next get to fetch
func (t *tokenCache) invalidate() {
	t.mu.Lock()
	t.accessToken = ""
	t.expiresAt = time.Time{}
	t.mu.Unlock()
}
