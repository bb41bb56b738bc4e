package tables

import (
	"os"
	"sync"
	"time"

	"github.com/Omar0902/SDOM/internal/model"
)

// caseCacheEntry holds one cached, fully-loaded InputBundle.
type caseCacheEntry struct {
	bundle    *model.InputBundle
	expiresAt time.Time
}

// caseCache is an in-memory, opt-in, TTL-based cache keyed by case
// directory path, disabled in production. Case directories are
// immutable inputs on disk during a run, so caching the parsed
// InputBundle is safe within the TTL window.
type caseCache struct {
	mu    sync.RWMutex
	store map[string]*caseCacheEntry
	ttl   time.Duration
}

var globalCaseCache *caseCache
var caseCacheOnce sync.Once

// GetCaseCache returns the process-wide case cache if caching is enabled,
// or nil if disabled. Caching is opt-in via SDOM_ENABLE_CASE_CACHE=true and
// is always disabled when SDOM_ENV=production, since a stale case cache
// could silently serve outdated scenario data to a production solve.
func GetCaseCache() *caseCache {
	if os.Getenv("SDOM_ENABLE_CASE_CACHE") != "true" {
		return nil
	}
	if os.Getenv("SDOM_ENV") == "production" {
		return nil
	}

	caseCacheOnce.Do(func() {
		ttl := 10 * time.Minute
		if raw := os.Getenv("SDOM_CASE_CACHE_TTL"); raw != "" {
			if parsed, err := time.ParseDuration(raw); err == nil {
				ttl = parsed
			}
		}
		globalCaseCache = &caseCache{
			store: make(map[string]*caseCacheEntry),
			ttl:   ttl,
		}
		go globalCaseCache.cleanup()
	})
	return globalCaseCache
}

func (c *caseCache) Get(dir string) (*model.InputBundle, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[dir]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.bundle, true
}

func (c *caseCache) Set(dir string, bundle *model.InputBundle) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[dir] = &caseCacheEntry{bundle: bundle, expiresAt: time.Now().Add(c.ttl)}
}

func (c *caseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.expiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}
