package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the first middleware sees requests first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Assets answers requests whose path names an embedded asset and passes
// every other request to the next handler. Only the exact path is
// considered; there is no index fallback. With safeMethodsOnly, only GET
// and HEAD requests are answered from the assets.
func Assets(store ports.ArtifactStore, safeMethodsOnly bool, metrics ports.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if safeMethodsOnly && r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			asset, ok := store.Asset(strings.TrimPrefix(r.URL.Path, "/"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			metrics.AssetServed()
			h := w.Header()
			h.Set("Content-Type", asset.MediaType)
			h.Set("Content-Length", strconv.Itoa(len(asset.Bytes)))
			w.WriteHeader(http.StatusOK)
			if r.Method != http.MethodHead {
				_, _ = w.Write(asset.Bytes)
			}
		})
	}
}

// State is shared with every request handler.
type State struct {
	Environment  domain.Environment
	Strategy     domain.DeliveryStrategy
	FrontendPort uint16
	Refresher    ports.CacheRefresher
}

type stateKey struct{}

// WithState injects state into each request context.
func WithState(state *State) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), stateKey{}, state)))
		})
	}
}

// StateFrom returns the state injected by WithState.
func StateFrom(ctx context.Context) (*State, bool) {
	state, ok := ctx.Value(stateKey{}).(*State)
	return state, ok
}
