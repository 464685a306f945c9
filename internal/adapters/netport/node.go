package netport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

// NodeID is the unique identifier for the port allocator Graft node.
const NodeID graft.ID = "adapter.port_allocator"

func init() {
	graft.Register(graft.Node[ports.PortAllocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PortAllocator, error) {
			return New(domain.DevServerPort), nil
		},
	})
}
