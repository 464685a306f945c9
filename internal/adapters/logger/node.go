package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/frame/internal/adapters/config"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.HostConfigNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[*domain.HostConfig](ctx)
			if err != nil {
				return nil, err
			}

			lg := New()
			lg.SetFormat(cfg.LogFormat)
			return lg, nil
		},
	})
}
