// Package server hosts the HTTP listener and the middleware in front of the proxy.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ShutdownTimeout bounds how long in-flight requests may run after shutdown starts.
	ShutdownTimeout = 5 * time.Second

	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// LoopbackAddress returns the listen address for port on the loopback interface.
func LoopbackAddress(port uint16) string {
	return net.JoinHostPort(domain.LoopbackHost, strconv.Itoa(int(port)))
}

// Server serves a handler until its context is canceled.
type Server struct {
	address string
	handler http.Handler
	logger  ports.Logger
	ready   chan struct{}
	addr    net.Addr
}

// New creates a server for handler on address.
func New(address string, handler http.Handler, logger ports.Logger) *Server {
	return &Server{
		address: address,
		handler: handler,
		logger:  logger,
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the listener is bound or binding failed.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address. Only valid after Ready is closed.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Serve binds the listener and serves until ctx is canceled, then shuts down
// gracefully. A canceled context is a clean exit and returns nil.
func (s *Server) Serve(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.ready)
		return zerr.With(zerr.Wrap(err, domain.ErrListenerBindFailed.Error()), "address", s.address)
	}
	s.addr = lis.Addr()
	close(s.ready)

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	s.logger.Info("server listening", "address", "http://"+s.addr.String())

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveDone:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrServeTerminated.Error()), "address", s.addr.String())
	}

	s.logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		s.logger.Warn("server shutdown incomplete", "error", err.Error())
	}

	return nil
}
