// Package netport picks the loopback port the frontend listens on.
package netport

import (
	"net"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PortAllocator = (*Allocator)(nil)

// Allocator implements ports.PortAllocator.
//
// In production the port is found by binding 127.0.0.1:0 and releasing it
// again. Another process may claim the port before the frontend binds it.
type Allocator struct {
	devPort uint16
}

// New creates an allocator that hands out devPort in development.
func New(devPort uint16) *Allocator {
	return &Allocator{devPort: devPort}
}

// Allocate returns the frontend port for env.
func (a *Allocator) Allocate(env domain.Environment) (uint16, error) {
	if env == domain.Development {
		return a.devPort, nil
	}

	l, err := net.Listen("tcp", net.JoinHostPort(domain.LoopbackHost, "0"))
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrPortAllocationFailed.Error())
	}

	addr, ok := l.Addr().(*net.TCPAddr)
	if closeErr := l.Close(); closeErr != nil {
		return 0, zerr.Wrap(closeErr, domain.ErrPortAllocationFailed.Error())
	}
	if !ok {
		return 0, zerr.With(domain.ErrPortAllocationFailed, "addr", l.Addr().String())
	}

	return uint16(addr.Port), nil //nolint:gosec // TCP ports fit in uint16
}
