// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"net/http"
	"time"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultShutdownTimeout = 3 * time.Second
)

// Option configures the HTTP server.
type Option func(s *settings)

type settings struct {
	name     string
	address  string
	handler  http.Handler
	logger   Logger
	timeouts Timeouts
}

// Timeouts are the HTTP server timeouts.
type Timeouts struct {
	// Read bounds the reading of a request, headers included.
	Read time.Duration
	// Shutdown bounds the graceful shutdown once the context is done.
	Shutdown time.Duration
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}

	if s.handler == nil {
		s.handler = http.NewServeMux()
	}

	if s.logger == nil {
		s.logger = noopLogger{}
	}

	if s.timeouts.Read == 0 {
		s.timeouts.Read = defaultReadTimeout
	}

	if s.timeouts.Shutdown == 0 {
		s.timeouts.Shutdown = defaultShutdownTimeout
	}

	return s
}

// Handler sets the handler serving the requests, an empty mux by default.
func Handler(handler http.Handler) Option {
	return func(s *settings) {
		s.handler = handler
	}
}

// Address sets the listening address. An empty address or port
// lets the OS pick one.
func Address(address string) Option {
	return func(s *settings) {
		s.address = address
	}
}

// WithLogger sets the logger and the server name used in its logs.
func WithLogger(name string, logger Logger) Option {
	return func(s *settings) {
		s.name = name
		s.logger = logger
	}
}

// WithTimeouts sets the server timeouts. Zero timeouts keep their
// default of 10 seconds to read a request and 3 seconds to shutdown.
func WithTimeouts(timeouts Timeouts) Option {
	return func(s *settings) {
		s.timeouts = timeouts
	}
}
