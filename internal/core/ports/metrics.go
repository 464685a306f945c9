package ports

import (
	"time"

	"go.trai.ch/frame/internal/core/domain"
)

// CacheResult classifies how the proxy answered a request.
type CacheResult string

const (
	// CacheHit means the response came from the proxy cache.
	CacheHit CacheResult = "hit"
	// CacheMiss means the response was fetched upstream and may have been stored.
	CacheMiss CacheResult = "miss"
	// CacheBypass means an exclude rule kept the request out of the cache.
	CacheBypass CacheResult = "bypass"
)

// Metrics records host-level measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	ProxyRequest(result CacheResult)
	UpstreamError()
	CacheRefreshed(entries int)
	FrontendReady(strategy domain.DeliveryStrategy, reason domain.ReadyReason, took time.Duration)
	FrontendExited(strategy domain.DeliveryStrategy)
	AssetServed()
}
