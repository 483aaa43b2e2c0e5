package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/EugeneDevastator/TraVis/internal/log"
)

const (
	DefaultExpiration      = 5 * time.Second
	DefaultCleanupInterval = time.Minute
)

// InMemory is a Cache backed by go-cache.
type InMemory[V any] struct {
	name  string
	cache *gocache.Cache
}

var _ Cache[[]string] = (*InMemory[[]string])(nil)

// NewInMemory creates a cache. name only labels log lines.
func NewInMemory[V any](name string, defaultExpiration, cleanupInterval time.Duration) *InMemory[V] {
	return &InMemory[V]{
		name:  name,
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get returns the cached value for key. A value of the wrong type counts as a
// miss.
func (c *InMemory[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	raw, found := c.cache.Get(key)
	if !found {
		log.Debug(log.CatCache, "cache miss", "cache", c.name, "key", key)
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		log.Error(log.CatCache, "cached value has unexpected type", "cache", c.name, "key", key)
		return zero, false
	}
	log.Debug(log.CatCache, "cache hit", "cache", c.name, "key", key)
	return v, true
}

// Set stores value for ttl. A zero ttl uses the cache default.
func (c *InMemory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
}

// Delete evicts keys.
func (c *InMemory[V]) Delete(_ context.Context, keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
}

// Flush evicts everything.
func (c *InMemory[V]) Flush(context.Context) {
	c.cache.Flush()
}
