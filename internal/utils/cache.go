package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache process-wide cache
var Cache *cache.Cache

// InitCache sets up the global cache: 5 minute default expiry, 10 minute sweep
func InitCache() {
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// CacheGet reads a cached value
func CacheGet(key string) (interface{}, bool) {
	return Cache.Get(key)
}

// CacheSet stores a value; cache.DefaultExpiration uses the default expiry
func CacheSet(key string, value interface{}, duration time.Duration) {
	Cache.Set(key, value, duration)
}

// CacheDelete removes a key
func CacheDelete(key string) {
	Cache.Delete(key)
}

type ttlEntry[T any] struct {
	value   T
	expires time.Time
}

// TTLCache size bounded LRU whose entries also expire
type TTLCache[T any] struct {
	lru *lru.Cache[string, ttlEntry[T]]
	ttl time.Duration
	now func() time.Time
}

// NewTTLCache holds at most size entries, each for ttl. It panics on a
// non-positive size.
func NewTTLCache[T any](size int, ttl time.Duration) *TTLCache[T] {
	l, err := lru.New[string, ttlEntry[T]](size)
	if err != nil {
		panic(err)
	}
	return &TTLCache[T]{lru: l, ttl: ttl, now: time.Now}
}

// Set adds or replaces key and restarts its ttl
func (c *TTLCache[T]) Set(key string, value T) {
	c.lru.Add(key, ttlEntry[T]{value: value, expires: c.now().Add(c.ttl)})
}

// Get returns the live value for key; an expired entry is removed
func (c *TTLCache[T]) Get(key string) (value T, ok bool) {
	e, found := c.lru.Get(key)
	if !found {
		return value, false
	}
	if !c.now().Before(e.expires) {
		c.lru.Remove(key)
		return value, false
	}
	return e.value, true
}

// Clear drops every entry
func (c *TTLCache[T]) Clear() {
	c.lru.Purge()
}
