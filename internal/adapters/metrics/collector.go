package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

// Namespace prefixes every metric name.
const Namespace = "frame"

// Collector implements ports.Metrics on a private Prometheus registry.
type Collector struct {
	proxyRequests  *prometheus.CounterVec
	upstreamErrors prometheus.Counter
	cacheRefreshes prometheus.Counter
	cacheEvicted   prometheus.Counter
	frontendReady  *prometheus.HistogramVec
	frontendExits  *prometheus.CounterVec
	assetsServed   prometheus.Counter

	registry *prometheus.Registry
}

// NewCollector creates a collector with all metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.proxyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "proxy_requests_total",
			Help:      "Requests answered by the proxy, by cache result",
		},
		[]string{"cache"},
	)

	c.upstreamErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "proxy_upstream_errors_total",
			Help:      "Requests that failed to reach the frontend",
		},
	)

	c.cacheRefreshes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "proxy_cache_refreshes_total",
			Help:      "Number of proxy cache refreshes",
		},
	)

	c.cacheEvicted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "proxy_cache_evicted_entries_total",
			Help:      "Cache entries dropped by refreshes",
		},
	)

	c.frontendReady = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "frontend_ready_seconds",
			Help:      "Time from spawn until the frontend was ready",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"strategy", "reason"},
	)

	c.frontendExits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frontend_exits_total",
			Help:      "Frontend processes that exited on their own",
		},
		[]string{"strategy"},
	)

	c.assetsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "assets_served_total",
			Help:      "Requests answered from embedded static assets",
		},
	)

	c.registry.MustRegister(
		c.proxyRequests,
		c.upstreamErrors,
		c.cacheRefreshes,
		c.cacheEvicted,
		c.frontendReady,
		c.frontendExits,
		c.assetsServed,
	)

	return c
}

// ProxyRequest counts a proxied request.
func (c *Collector) ProxyRequest(result ports.CacheResult) {
	c.proxyRequests.WithLabelValues(string(result)).Inc()
}

// UpstreamError counts a failed upstream round trip.
func (c *Collector) UpstreamError() {
	c.upstreamErrors.Inc()
}

// CacheRefreshed counts a refresh and the entries it dropped.
func (c *Collector) CacheRefreshed(entries int) {
	c.cacheRefreshes.Inc()
	c.cacheEvicted.Add(float64(entries))
}

// FrontendReady records how long the frontend took to become ready.
func (c *Collector) FrontendReady(strategy domain.DeliveryStrategy, reason domain.ReadyReason, took time.Duration) {
	c.frontendReady.WithLabelValues(strategy.String(), string(reason)).Observe(took.Seconds())
}

// FrontendExited counts an unexpected frontend exit.
func (c *Collector) FrontendExited(strategy domain.DeliveryStrategy) {
	c.frontendExits.WithLabelValues(strategy.String()).Inc()
}

// AssetServed counts an embedded asset response.
func (c *Collector) AssetServed() {
	c.assetsServed.Inc()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
