package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is an in-memory TTL cache with singleflight loads. Used for OGC
// capabilities documents, which are large and change rarely.
type Cache[K ~string, V any] struct {
	mu    sync.Mutex
	items map[K]entry[V]
	ttl   time.Duration
	stats Stats
	group singleflight.Group
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// New creates a cache with the given TTL. A zero or negative TTL
// disables caching entirely: Get always misses and Load always loads.
func New[K ~string, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]entry[V]),
		ttl:   ttl,
	}
}

// Get retrieves a value. Returns the zero value and false on miss or expiry.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok || time.Now().After(e.expiresAt) {
		if ok {
			delete(c.items, key)
		}
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	return e.value, true
}

// Set stores a value under the default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Load returns the cached value for key, or runs loader to produce it.
// Concurrent loads of the same key share a single loader call; a loader
// error is returned to all waiters and nothing is cached.
func (c *Cache[K, V]) Load(key K, loader func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(string(key), func() (any, error) {
		val, err := loader()
		if err != nil {
			return val, err
		}
		c.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Invalidate removes a key.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Stats reports hit/miss counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Stats holds cache effectiveness counters.
type Stats struct {
	Hits   int64
	Misses int64
}
