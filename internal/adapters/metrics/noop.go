package metrics

import (
	"time"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
)

// NoOp discards all measurements.
type NoOp struct{}

func (NoOp) ProxyRequest(ports.CacheResult) {}
func (NoOp) UpstreamError()                 {}
func (NoOp) CacheRefreshed(int)             {}
func (NoOp) FrontendReady(domain.DeliveryStrategy, domain.ReadyReason, time.Duration) {
}
func (NoOp) FrontendExited(domain.DeliveryStrategy) {}
func (NoOp) AssetServed()                           {}
