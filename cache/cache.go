// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Thread-safe cache guarded by a RWMutex with periodic cleanup

package cache

import (
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	data      interface{}
	expiresAt time.Time
}

type Cache struct {
	mu    sync.RWMutex
	store map[string]entry
	ttl   time.Duration
}

// New creates a cache whose entries expire after ttl by default.
// A background goroutine sweeps expired entries once a minute.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		store: make(map[string]entry),
		ttl:   ttl,
	}
	go c.startCleanup()
	return c
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()

	if !ok {
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}

	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed it
		if cur, ok := c.store[key]; ok && time.Now().After(cur.expiresAt) {
			delete(c.store, key)
		}
		c.mu.Unlock()
		slog.Debug("Cache expired", "key", key)
		return nil, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.store[key] = entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

func (c *Cache) Clear(key string) {
	c.mu.Lock()
	delete(c.store, key)
	c.mu.Unlock()
}

// Len returns the number of entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *Cache) startCleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, e := range c.store {
			if now.After(e.expiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}
