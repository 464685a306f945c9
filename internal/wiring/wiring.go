// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/frame/internal/adapters/config"
	_ "go.trai.ch/frame/internal/adapters/embedded"
	_ "go.trai.ch/frame/internal/adapters/frontend"
	_ "go.trai.ch/frame/internal/adapters/logger"
	_ "go.trai.ch/frame/internal/adapters/metrics"
	_ "go.trai.ch/frame/internal/adapters/netport"
	_ "go.trai.ch/frame/internal/adapters/telemetry"
	_ "go.trai.ch/frame/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/frame/internal/app"
)
