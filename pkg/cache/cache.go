// Package cache is the in-memory query cache sitting between the services
// layer and the API client. Entries live for the process lifetime and are
// keyed by resource plus encoded parameters, so distinct parameter
// combinations are cached separately. Identical concurrent fetches for one
// key are coalesced; mutations invalidate by resource prefix, forcing a
// refetch on the next read.
package cache

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
	group   singleflight.Group
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]any),
	}
}

// Key builds a cache key from a resource name, an operation, and encoded
// parameters. Params are encoded with url.Values so key construction is
// order-independent.
func Key(resource, op string, params url.Values) string {
	parts := []string{resource, op}
	if len(params) > 0 {
		parts = append(parts, params.Encode())
	}
	return strings.Join(parts, ":")
}

// Lookup returns the cached value for a key, if present.
func (c *Cache) Lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a value under a key, replacing any previous value.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate removes every entry whose key starts with one of the given
// resource prefixes. Passing "campaigns" drops both the list and item
// entries of that resource.
func (c *Cache) Invalidate(resources ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, resource := range resources {
			if key == resource || strings.HasPrefix(key, resource+":") {
				delete(c.entries, key)
				break
			}
		}
	}
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// get runs the read-through path: cached value if present, otherwise a
// single coalesced fetch per key.
func (c *Cache) get(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	if v, ok := c.Lookup(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have populated the entry while we
		// waited on the flight group.
		if v, ok := c.Lookup(key); ok {
			return v, nil
		}

		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// GetAs is the typed read-through entry point. A fetch error is returned to
// every coalesced caller and nothing is cached.
func GetAs[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	v, err := c.get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		// A key collision between differently typed queries; treat the
		// entry as stale and refetch directly.
		typed, err = fetch(ctx)
		if err != nil {
			return zero, err
		}
		c.Set(key, typed)
	}
	return typed, nil
}
