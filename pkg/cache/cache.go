// Package cache is a time-boxed response memo. It is an injected
// object, never package-global state, so the transport and normalizer
// stay testable in isolation. There is no capacity bound and no
// eviction beyond the TTL.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value   any
	expires time.Time
}

// ResponseCache memoizes call results keyed by operation + arguments.
type ResponseCache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]entry
}

func New(ttl time.Duration) *ResponseCache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock injects the clock; tests advance it by hand.
func NewWithClock(ttl time.Duration, now func() time.Time) *ResponseCache {
	return &ResponseCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Key builds a cache key from an operation name and its arguments.
func Key(op string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, op)
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, ":")
}

func (c *ResponseCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *ResponseCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: c.now().Add(c.ttl)}
}

func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Lookup returns the memoized value under key, calling fetch on a miss.
// Errors are never cached.
func Lookup[T any](c *ResponseCache, key string, fetch func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v.(T), nil
	}
	v, err := fetch()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}
