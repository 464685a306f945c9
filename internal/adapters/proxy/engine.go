package proxy

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"go.trai.ch/frame/internal/adapters/metrics"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
)

// CacheHeader reports how the proxy answered a request: hit, miss or bypass.
const CacheHeader = "X-Frame-Cache"

// maxCacheableBody is the largest response body the cache stores.
const maxCacheableBody = 16 << 20

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics sets the metrics sink.
func WithMetrics(m ports.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithCacheLimits bounds the response cache by entry count and summed body
// size. A non-positive limit disables that bound.
func WithCacheLimits(maxEntries int, maxBytes int64) Option {
	return func(e *Engine) {
		e.maxEntries = maxEntries
		e.maxBytes = maxBytes
	}
}

// WithTransport replaces the upstream HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(e *Engine) { e.proxy.Transport = rt }
}

// Engine is a caching reverse proxy for a single upstream origin.
type Engine struct {
	cfg      domain.ProxyConfig
	upstream *url.URL
	proxy    *httputil.ReverseProxy
	cache    *ResponseCache
	bridge   *wsBridge
	logger   ports.Logger
	metrics  ports.Metrics

	maxEntries int
	maxBytes   int64
}

type decisionKey struct{}

// decision travels with the outbound request so the response hook knows
// whether to store the response.
type decision struct {
	key    string
	result ports.CacheResult
}

// New builds the engine for cfg and returns it with the trigger that
// invalidates its cache.
func New(cfg domain.ProxyConfig, logger ports.Logger, opts ...Option) (*Engine, *RefreshTrigger, error) {
	upstream, err := url.Parse(cfg.UpstreamOrigin)
	if err != nil || upstream.Scheme == "" || upstream.Host == "" {
		if err == nil {
			err = errors.New("missing scheme or host")
		}
		return nil, nil, zerr.With(zerr.Wrap(err, "invalid upstream origin"), "origin", cfg.UpstreamOrigin)
	}
	if cfg.CacheKey == nil {
		cfg.CacheKey = domain.MethodPathKey
	}

	e := &Engine{
		cfg:      cfg,
		upstream: upstream,
		logger:   logger,
		metrics:  metrics.NoOp{},

		maxEntries: DefaultMaxEntries,
		maxBytes:   DefaultMaxBytes,
	}
	e.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(upstream)
			pr.SetXForwarded()
		},
		ModifyResponse: e.captureResponse,
		ErrorHandler:   e.upstreamFailed,
	}
	if cfg.WebsocketEnabled {
		e.bridge = newWSBridge(upstream, logger)
	}

	for _, opt := range opts {
		opt(e)
	}
	e.cache = NewResponseCache(e.maxEntries, e.maxBytes)

	return e, &RefreshTrigger{cache: e.cache, metrics: e.metrics}, nil
}

// Cache exposes the response cache.
func (e *Engine) Cache() *ResponseCache {
	return e.cache
}

// ServeHTTP forwards r upstream, answering from the cache where allowed.
func (e *Engine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		e.serveWebsocket(w, r)
		return
	}

	if e.excluded(r) {
		e.metrics.ProxyRequest(ports.CacheBypass)
		e.forward(w, r, decision{result: ports.CacheBypass})
		return
	}

	key := e.cfg.CacheKey(r.Method, r.URL.Path)
	if entry, ok := e.cache.get(key); ok {
		e.metrics.ProxyRequest(ports.CacheHit)
		writeCached(w, entry)
		return
	}

	e.metrics.ProxyRequest(ports.CacheMiss)
	e.forward(w, r, decision{key: key, result: ports.CacheMiss})
}

func (e *Engine) excluded(r *http.Request) bool {
	for _, rule := range e.cfg.ExcludeRules {
		if rule.Matches(r.Method, r.URL.Path) {
			return true
		}
	}
	return false
}

func (e *Engine) forward(w http.ResponseWriter, r *http.Request, d decision) {
	ctx := context.WithValue(r.Context(), decisionKey{}, d)
	e.proxy.ServeHTTP(w, r.WithContext(ctx))
}

func (e *Engine) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	if e.bridge == nil {
		http.Error(w, "websocket proxying is disabled", http.StatusNotImplemented)
		return
	}
	if err := e.bridge.serve(w, r); err != nil {
		e.metrics.UpstreamError()
	}
}

// captureResponse tags the response and stores it when it is cacheable.
func (e *Engine) captureResponse(resp *http.Response) error {
	d, ok := resp.Request.Context().Value(decisionKey{}).(decision)
	if !ok {
		return nil
	}
	resp.Header.Set(CacheHeader, string(d.result))

	if d.result != ports.CacheMiss || !cacheable(resp) {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCacheableBody+1))
	if err != nil {
		return err
	}
	if len(body) > maxCacheableBody {
		resp.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(body), resp.Body), Closer: resp.Body}
		return nil
	}
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	header := resp.Header.Clone()
	header.Del(CacheHeader)
	e.cache.set(&cachedResponse{
		key:    d.key,
		status: resp.StatusCode,
		header: header,
		body:   body,
	})
	return nil
}

func (e *Engine) upstreamFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	e.metrics.UpstreamError()
	e.logger.Warn("upstream request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error(),
	)
	w.WriteHeader(http.StatusBadGateway)
}

// cacheable reports whether an upstream response may be stored.
func cacheable(resp *http.Response) bool {
	if resp.StatusCode != http.StatusOK {
		return false
	}
	if len(resp.Header.Values("Set-Cookie")) > 0 {
		return false
	}
	if strings.Contains(strings.ToLower(resp.Header.Get("Cache-Control")), "no-store") {
		return false
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mt == "text/event-stream" {
		return false
	}
	// Entries are shared by every client, so only identity-encoded bodies
	// that vary on nothing but Accept-Encoding are stored.
	if resp.Header.Get("Content-Encoding") != "" {
		return false
	}
	for _, field := range resp.Header.Values("Vary") {
		for name := range strings.SplitSeq(field, ",") {
			name = strings.TrimSpace(name)
			if name != "" && !strings.EqualFold(name, "Accept-Encoding") {
				return false
			}
		}
	}
	return resp.ContentLength <= maxCacheableBody
}

func writeCached(w http.ResponseWriter, entry *cachedResponse) {
	h := w.Header()
	for k, vv := range entry.header {
		h[k] = append([]string(nil), vv...)
	}
	h.Set(CacheHeader, string(ports.CacheHit))
	w.WriteHeader(entry.status)
	_, _ = w.Write(entry.body)
}

type readCloser struct {
	io.Reader
	io.Closer
}
