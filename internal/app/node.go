package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/frame/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/embedded"  //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/frontend"  //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/netport"   //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.HostConfigNodeID,
			embedded.NodeID,
			netport.NodeID,
			frontend.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.HostConfig](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	allocator, err := graft.Dep[ports.PortAllocator](ctx)
	if err != nil {
		return nil, err
	}

	fe, err := graft.Dep[ports.Frontend](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[*metrics.Collector](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, store, allocator, fe, w, log).
		WithTracer(tracer).
		WithMetrics(collector, collector.Handler()), nil
}
