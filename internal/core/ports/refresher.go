package ports

// CacheRefresher invalidates the proxy response cache.
//
//go:generate mockgen -source=refresher.go -destination=mocks/mock_refresher.go -package=mocks
type CacheRefresher interface {
	// Refresh drops every cached response.
	Refresh() int
	// RefreshMatching drops the cached responses whose key matches glob.
	RefreshMatching(glob string) int
}
