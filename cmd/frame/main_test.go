package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/frame/internal/app"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller, allocator *mocks.MockPortAllocator) (*app.Components, *mocks.MockLogger) {
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		&domain.HostConfig{Environment: domain.Production, Strategy: domain.NativeBinary},
		mocks.NewMockArtifactStore(ctrl),
		allocator,
		mocks.NewMockFrontend(ctrl),
		mocks.NewMockWatcher(ctrl),
		mockLogger,
	)
	return &app.Components{App: application, Logger: mockLogger}, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _ := newComponents(ctrl, mocks.NewMockPortAllocator(ctrl))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ServeError verifies that a failing host is logged and exits with status 1.
func TestRun_ServeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	allocator := mocks.NewMockPortAllocator(ctrl)
	components, mockLogger := newComponents(ctrl, allocator)

	allocator.EXPECT().Allocate(domain.Production).Return(uint16(0), domain.ErrPortAllocationFailed)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrPortAllocationFailed.Error())
	})

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), nil, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

// TestRun_AppliesOptions verifies that options see the application before it runs.
func TestRun_AppliesOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _ := newComponents(ctrl, mocks.NewMockPortAllocator(ctrl))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	var got *app.App
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider, func(a *app.App) {
		got = a
	})

	assert.Equal(t, 0, exitCode)
	assert.Same(t, components.App, got)
}
