package ports

import "context"

// Frontend supervises the frontend child process.
//
//go:generate mockgen -source=frontend.go -destination=mocks/mock_frontend.go -package=mocks
type Frontend interface {
	// Start launches the frontend on the given loopback port and returns once it is ready.
	Start(ctx context.Context, port uint16) error
	// Stop terminates the frontend. It is safe to call more than once.
	Stop()
	// Done is closed when the frontend process has exited.
	Done() <-chan struct{}
	// Err returns the exit error once Done is closed.
	Err() error
}
