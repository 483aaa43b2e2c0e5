// Package cachemanager caches provider enumerations (volume lists, window
// titles) for a short time so that re-rendering a view does not hit the
// underlying source on every keystroke.
package cachemanager

import (
	"context"
	"time"
)

// Cache stores values of one type under string keys.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
}
