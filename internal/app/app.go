// Package app implements the application layer for frame.
package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"go.trai.ch/frame/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/proxy"     //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/server"    //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchedSourceDir is the directory below the client directory that the
// dev watcher observes.
const WatchedSourceDir = "src"

// App hosts the frontend behind the caching proxy.
type App struct {
	cfg       *domain.HostConfig
	store     ports.ArtifactStore
	allocator ports.PortAllocator
	frontend  ports.Frontend
	watcher   ports.Watcher
	logger    ports.Logger

	tracer         ports.Tracer
	metrics        ports.Metrics
	metricsHandler http.Handler
	workDir        string
	onListening    func(net.Addr)
}

// New creates a new App instance.
func New(
	cfg *domain.HostConfig,
	store ports.ArtifactStore,
	allocator ports.PortAllocator,
	frontend ports.Frontend,
	w ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		cfg:       cfg,
		store:     store,
		allocator: allocator,
		frontend:  frontend,
		watcher:   w,
		logger:    logger,
		tracer:    telemetry.NewNoOpTracer(),
		metrics:   metrics.NoOp{},
	}
}

// WithTracer sets the tracer used for host phases.
func (a *App) WithTracer(t ports.Tracer) *App {
	a.tracer = t
	return a
}

// WithMetrics sets the metrics sink and the handler exposed on the metrics address.
func (a *App) WithMetrics(m ports.Metrics, handler http.Handler) *App {
	a.metrics = m
	a.metricsHandler = handler
	return a
}

// WithWorkDir sets the directory the client directory is resolved against.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// OnListening registers fn to be called with the bound server address.
func (a *App) OnListening(fn func(net.Addr)) *App {
	a.onListening = fn
	return a
}

// Serve starts the frontend, puts the proxy in front of it and serves until
// ctx is canceled or a fatal event occurs. The frontend is always stopped
// before Serve returns.
func (a *App) Serve(ctx context.Context) error {
	_, span := a.tracer.Start(ctx, "host.allocate")
	port, err := a.allocator.Allocate(a.cfg.Environment)
	span.RecordError(err)
	span.End()
	if err != nil {
		return err
	}

	a.logger.Info("starting frontend",
		"environment", a.cfg.Environment.String(),
		"strategy", a.cfg.Strategy.String(),
		"port", port,
	)

	defer a.frontend.Stop()
	if err := a.frontend.Start(ctx, port); err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return nil
		}
		return err
	}

	proxyCfg, err := NewProxyConfig(port, a.cfg.Environment)
	if err != nil {
		return err
	}
	engine, trigger, err := proxy.New(proxyCfg, a.logger, proxy.WithMetrics(a.metrics))
	if err != nil {
		return err
	}

	state := &server.State{
		Environment:  a.cfg.Environment,
		Strategy:     a.cfg.Strategy,
		FrontendPort: port,
		Refresher:    trigger,
	}
	srv := server.New(server.LoopbackAddress(a.cfg.ServerPort), a.handler(engine, state), a.logger)

	ctx, span = a.tracer.Start(ctx, "host.serve")
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(gctx)
	})

	if a.onListening != nil {
		g.Go(func() error {
			<-srv.Ready()
			if addr := srv.Addr(); addr != nil {
				a.onListening(addr)
			}
			return nil
		})
	}

	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case <-a.frontend.Done():
			if gctx.Err() != nil {
				return nil
			}
			return a.frontendExited()
		}
	})

	if a.cfg.MetricsAddr != "" && a.metricsHandler != nil {
		g.Go(func() error {
			return a.serveMetrics(gctx)
		})
	}

	if a.cfg.Environment == domain.Development && a.watcher != nil {
		g.Go(func() error {
			a.watchSources(gctx, trigger)
			return nil
		})
	}

	err = g.Wait()
	span.RecordError(err)
	return err
}

// handler composes the middleware chain: embedded assets first when the
// strategy ships them, then the shared state, then the proxy.
func (a *App) handler(engine http.Handler, state *server.State) http.Handler {
	middlewares := make([]server.Middleware, 0, 2) //nolint:mnd // assets and state
	if a.cfg.Strategy.UsesEmbeddedAssets() {
		middlewares = append(middlewares, server.Assets(a.store, a.cfg.AssetsSafeMethodsOnly, a.metrics))
	}
	middlewares = append(middlewares, server.WithState(state))
	return server.Chain(engine, middlewares...)
}

func (a *App) frontendExited() error {
	err := a.frontend.Err()
	if err == nil {
		return zerr.With(domain.ErrFrontendExited, "strategy", a.cfg.Strategy.String())
	}
	return zerr.With(zerr.Wrap(err, domain.ErrFrontendExited.Error()), "strategy", a.cfg.Strategy.String())
}

func (a *App) serveMetrics(ctx context.Context) error {
	srv := server.New(a.cfg.MetricsAddr, a.metricsHandler, a.logger.With("listener", "metrics"))
	if err := srv.Serve(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrMetricsServeFailed.Error())
	}
	return nil
}

// watchSources refreshes the proxy cache on source changes. Failures only
// disable the refresh; the host keeps serving.
func (a *App) watchSources(ctx context.Context, refresher ports.CacheRefresher) {
	workDir := a.workDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			a.logger.Warn(domain.ErrWatcherFailed.Error(), "error", err.Error())
			return
		}
		workDir = wd
	}

	root := filepath.Join(workDir, filepath.FromSlash(a.store.Manifest().ClientDir), WatchedSourceDir)
	err := watcher.RefreshOnChange(ctx, a.watcher, root, refresher, a.logger, watcher.DefaultDebounceWindow)
	if err != nil {
		a.logger.Warn(domain.ErrWatcherFailed.Error(), "root", root, "error", err.Error())
	}
}
