// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	settings   settings
	address    string
	addressSet chan struct{}
}

// New creates a new HTTP server with the given options.
func New(options ...Option) *Server {
	return &Server{
		settings:   newSettings(options),
		addressSet: make(chan struct{}),
	}
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server is listening,
// and the done channel receives the server exit error, if any.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	server := http.Server{
		Addr:              s.settings.address,
		Handler:           s.settings.handler,
		ReadTimeout:       s.settings.timeouts.Read,
		ReadHeaderTimeout: s.settings.timeouts.Read,
	}

	listener, err := net.Listen("tcp", s.settings.address)
	if err != nil {
		done <- fmt.Errorf("cannot listen on %s: %w", s.settings.address, err)
		return
	}

	s.address = listener.Addr().String()
	close(s.addressSet)

	serveErr := make(chan error)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	s.settings.logger.Info(s.settings.name + " http server listening on " + s.address)
	close(ready)

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		done <- err
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.settings.timeouts.Shutdown)
	defer cancel()
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		s.settings.logger.Warn(s.settings.name + " http server shutdown failed: " + err.Error())
		err = fmt.Errorf("cannot shutdown %s http server: %w", s.settings.name, err)
	}

	serveResult := <-serveErr
	if err == nil && !errors.Is(serveResult, http.ErrServerClosed) {
		err = serveResult
	}
	done <- err
}

// Address blocks until the server is listening and returns
// its listening address.
func (s *Server) Address() string {
	<-s.addressSet
	return s.address
}
