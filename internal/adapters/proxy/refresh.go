package proxy

import (
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

// RefreshTrigger invalidates the cache of one Engine. It is safe to share
// between goroutines.
type RefreshTrigger struct {
	cache   *ResponseCache
	metrics ports.Metrics
}

// Refresh empties the cache and returns the number of dropped entries.
func (t *RefreshTrigger) Refresh() int {
	n := t.cache.clear(func(string) bool { return true })
	t.metrics.CacheRefreshed(n)
	return n
}

// RefreshMatching drops the entries whose cache key matches glob,
// e.g. "GET::/assets/*".
func (t *RefreshTrigger) RefreshMatching(glob string) int {
	n := t.cache.clear(func(key string) bool { return domain.MatchGlob(glob, key) })
	t.metrics.CacheRefreshed(n)
	return n
}

var _ ports.CacheRefresher = (*RefreshTrigger)(nil)
