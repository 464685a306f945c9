package app_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/frame/internal/adapters/logger"
	"go.trai.ch/frame/internal/app"
	"go.trai.ch/frame/internal/core/domain"
)

func TestNewComponents(t *testing.T) {
	log := logger.New()
	log.SetOutput(io.Discard)
	a := app.New(&domain.HostConfig{}, nil, nil, nil, nil, log)

	components := app.NewComponents(a, log)

	assert.Same(t, a, components.App)
	assert.Equal(t, log, components.Logger)
}
