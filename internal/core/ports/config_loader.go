package ports

import "go.trai.ch/frame/internal/core/domain"

// ConfigLoader resolves the host configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the environment (and an optional .env file in dir).
	Load(dir string) (*domain.HostConfig, error)
}
