package cachemanager

import (
	"context"
	"time"
)

// LoadFunc produces a fresh value on a cache miss.
type LoadFunc[V any] func(ctx context.Context) (V, error)

// ReadThrough serves one cache key, loading it on a miss. Failed loads are
// never cached, so the next Get retries the source.
type ReadThrough[V any] struct {
	cache Cache[V]
	key   string
	load  LoadFunc[V]
	ttl   time.Duration
}

// NewReadThrough wires key in cache to load. A non-positive ttl disables
// caching and every Get calls load.
func NewReadThrough[V any](cache Cache[V], key string, ttl time.Duration, load LoadFunc[V]) *ReadThrough[V] {
	return &ReadThrough[V]{cache: cache, key: key, load: load, ttl: ttl}
}

// Get returns the cached value or loads and caches a fresh one.
func (r *ReadThrough[V]) Get(ctx context.Context) (V, error) {
	if r.ttl <= 0 || r.cache == nil {
		return r.load(ctx)
	}
	if v, ok := r.cache.Get(ctx, r.key); ok {
		return v, nil
	}
	v, err := r.load(ctx)
	if err != nil {
		return v, err
	}
	r.cache.Set(ctx, r.key, v, r.ttl)
	return v, nil
}

// Invalidate drops the cached value.
func (r *ReadThrough[V]) Invalidate(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, r.key)
	}
}
