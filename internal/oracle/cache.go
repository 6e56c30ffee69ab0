package oracle

import (
	"container/list"
	"context"
	"sync"
)

// Cache stores evaluation results keyed by operation:expression.
// Implementations must be safe for concurrent use and must never fail
// a lookup loudly; a broken cache degrades to misses.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// LRUCache is a bounded in-memory cache with least-recently-used
// eviction. Symbolic results never change for a given key, so there is
// no TTL; the bound alone prevents unbounded growth over a long
// session.
type LRUCache struct {
	mu      sync.Mutex
	cap     int
	order   *list.List
	entries map[string]*list.Element
}

type lruEntry struct {
	key   string
	value string
}

func NewLRUCache(capacity int) *LRUCache {
	if capacity <= 0 {
		capacity = 256
	}
	return &LRUCache{
		cap:     capacity,
		order:   list.New(),
		entries: make(map[string]*list.Element, capacity),
	}
}

func (c *LRUCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).value, true
}

func (c *LRUCache) Set(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*lruEntry).value = value
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&lruEntry{key: key, value: value})
	if c.order.Len() > c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*lruEntry).key)
	}
}

// Len reports the number of cached entries.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CachedOracle is a decorator that serves repeated evaluations from a
// Cache. Only successful results are cached.
type CachedOracle struct {
	inner Oracle
	cache Cache
}

// WithCache wraps an Oracle with result caching.
func WithCache(o Oracle, cache Cache) Oracle {
	return &CachedOracle{inner: o, cache: cache}
}

func (c *CachedOracle) Evaluate(ctx context.Context, op Operation, expression string) (string, error) {
	key := CacheKey(op, expression)
	if result, ok := c.cache.Get(ctx, key); ok {
		return result, nil
	}

	result, err := c.inner.Evaluate(ctx, op, expression)
	if err != nil {
		return "", err
	}
	c.cache.Set(ctx, key, result)
	return result, nil
}

func (c *CachedOracle) Name() string { return c.inner.Name() }
