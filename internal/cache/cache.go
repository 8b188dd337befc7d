package cache

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// item wraps cached data with its expiry.
type item struct {
	data      any
	expiresAt time.Time
}

// Cache is a TTL wrapper around a fixed-capacity LRU, used for hot read
// responses. Write paths invalidate the keys they touch.
type Cache struct {
	lru *lru.Cache[string, item]
}

func New(size int) *Cache {
	l, err := lru.New[string, item](size)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &Cache{lru: l}
}

// Set stores data under key until the TTL elapses.
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	c.lru.Add(key, item{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached data, or nil when absent or expired.
func (c *Cache) Get(key string) any {
	val, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.expiresAt) {
		c.lru.Remove(key)
		return nil
	}
	return val.data
}

func (c *Cache) Delete(key string) {
	c.lru.Remove(key)
}

// DeletePrefix drops every key under a prefix, e.g. all cached variants of
// the article listing after a write.
func (c *Cache) DeletePrefix(prefix string) {
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
