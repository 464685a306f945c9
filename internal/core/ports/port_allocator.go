package ports

import "go.trai.ch/frame/internal/core/domain"

// PortAllocator picks the loopback port the frontend listens on.
//
//go:generate mockgen -source=port_allocator.go -destination=mocks/mock_port_allocator.go -package=mocks
type PortAllocator interface {
	Allocate(env domain.Environment) (uint16, error)
}
