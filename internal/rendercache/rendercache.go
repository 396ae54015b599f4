// Package rendercache memoizes expensive render output (glamour markdown,
// styled diagrams) keyed by pattern, width, and theme so resizes and theme
// toggles don't re-render every section.
package rendercache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lessuselesss/agents/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Cache is the read/write surface components render through.
type Cache[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Flush(ctx context.Context) error
}

// InMemoryCache is the go-cache backed implementation of Cache.
type InMemoryCache[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// New initializes an in-memory cache. useCase labels log entries.
func New[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCache[K, V] {
	return &InMemoryCache[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (c *InMemoryCache[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zero V

	value, found := c.cache.Get(string(key))
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "use_case", c.useCase, "key", key)
		return zero, false
	}

	log.Debug(log.CatCache, "cache hit", "use_case", c.useCase, "key", key)
	return v, true
}

// Set stores an item. A non-positive ttl uses the cache default.
func (c *InMemoryCache[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	d := ttl
	if d <= 0 {
		d = gocache.DefaultExpiration
	}
	c.cache.Set(string(key), value, d)
}

// Flush drops every cached entry. Called when the theme or color overrides
// change, since cached renders bake in resolved colors.
func (c *InMemoryCache[K, V]) Flush(ctx context.Context) error {
	c.cache.Flush()
	log.Debug(log.CatCache, "cache flushed", "use_case", c.useCase)
	return nil
}
