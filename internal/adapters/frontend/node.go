package frontend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/frame/internal/adapters/config"
	"go.trai.ch/frame/internal/adapters/embedded"
	"go.trai.ch/frame/internal/adapters/logger"
	"go.trai.ch/frame/internal/adapters/metrics"
	"go.trai.ch/frame/internal/adapters/telemetry"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

// NodeID is the unique identifier for the frontend supervisor Graft node.
const NodeID graft.ID = "adapter.frontend"

func init() {
	graft.Register(graft.Node[ports.Frontend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.HostConfigNodeID,
			embedded.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (ports.Frontend, error) {
			cfg, err := graft.Dep[*domain.HostConfig](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ArtifactStore](ctx)
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

			return New(cfg.Strategy, store, log,
				WithReadyTimeout(cfg.ReadyTimeout),
				WithTracer(tracer),
				WithMetrics(collector),
			), nil
		},
	})
}
