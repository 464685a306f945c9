// Package proxy implements the caching reverse proxy in front of the frontend.
package proxy

import (
	"container/list"
	"net/http"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultMaxEntries bounds how many responses the cache holds.
	DefaultMaxEntries = 1024
	// DefaultMaxBytes bounds the summed body size of cached responses.
	DefaultMaxBytes = 128 << 20
)

// cachedResponse is a stored upstream response.
type cachedResponse struct {
	key    string
	status int
	header http.Header
	body   []byte
}

// ResponseCache holds upstream responses keyed by their cache key.
// Entries are indexed by the xxhash of the key; the key itself is kept to
// reject hash collisions. When a limit is exceeded the least recently used
// entries are evicted.
type ResponseCache struct {
	mu         sync.Mutex
	entries    map[uint64]*list.Element
	order      *list.List // front is most recently used
	size       int64
	maxEntries int
	maxBytes   int64
}

// NewResponseCache creates an empty cache bounded by maxEntries responses and
// maxBytes of body. A non-positive limit disables that bound.
func NewResponseCache(maxEntries int, maxBytes int64) *ResponseCache {
	return &ResponseCache{
		entries:    make(map[uint64]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
		maxBytes:   maxBytes,
	}
}

func (c *ResponseCache) get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[xxhash.Sum64String(key)]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*cachedResponse)
	if entry.key != key {
		return nil, false
	}
	c.order.MoveToFront(el)
	return entry, true
}

// set stores entry, evicting the least recently used entries to stay within the limits.
func (c *ResponseCache) set(entry *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := xxhash.Sum64String(entry.key)
	if el, ok := c.entries[h]; ok {
		c.remove(h, el)
	}
	c.entries[h] = c.order.PushFront(entry)
	c.size += int64(len(entry.body))

	for c.order.Len() > 1 && c.overLimit() {
		oldest := c.order.Back()
		c.remove(xxhash.Sum64String(oldest.Value.(*cachedResponse).key), oldest)
	}
}

func (c *ResponseCache) overLimit() bool {
	if c.maxEntries > 0 && c.order.Len() > c.maxEntries {
		return true
	}
	return c.maxBytes > 0 && c.size > c.maxBytes
}

func (c *ResponseCache) remove(h uint64, el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, h)
	c.size -= int64(len(el.Value.(*cachedResponse).body))
}

// Len returns the number of stored responses.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Size returns the summed body size of stored responses.
func (c *ResponseCache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.size
}

// Keys returns the cache keys of all stored responses, most recently used first.
func (c *ResponseCache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*cachedResponse).key)
	}
	return keys
}

// clear drops every entry whose key satisfies match and returns how many were dropped.
func (c *ResponseCache) clear(match func(key string) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		entry := el.Value.(*cachedResponse)
		if match(entry.key) {
			c.remove(xxhash.Sum64String(entry.key), el)
			dropped++
		}
		el = next
	}
	return dropped
}
