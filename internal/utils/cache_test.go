package utils

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestGlobalCache(t *testing.T) {
	InitCache()

	CacheSet("k", 42, cache.DefaultExpiration)
	v, ok := CacheGet("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	CacheDelete("k")
	_, ok = CacheGet("k")
	assert.False(t, ok)

	CacheSet("short", 1, time.Nanosecond)
	time.Sleep(time.Millisecond)
	_, ok = CacheGet("short")
	assert.False(t, ok)
}

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewTTLCache[string](4, time.Minute)
	c.now = func() time.Time { return now }

	c.Set("soups", "Soups")
	v, ok := c.Get("soups")
	assert.True(t, ok)
	assert.Equal(t, "Soups", v)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("soups")
	assert.False(t, ok)

	// expired entries are dropped on read
	now = now.Add(-2 * time.Minute)
	_, ok = c.Get("soups")
	assert.False(t, ok)
}

func TestTTLCacheEviction(t *testing.T) {
	c := NewTTLCache[int](2, time.Hour)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok)
	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.False(t, ok)
}
