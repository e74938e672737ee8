// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/gossamer-secretstore/internal/httpserver"
	"github.com/ChainSafe/gossamer-secretstore/internal/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// SetLogLevel sets the log level of the package.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

var errExitedUnexpectedly = errors.New("metrics server exited unexpectedly")

// scrapeReadTimeout bounds reading a scrape request.
const scrapeReadTimeout = 5 * time.Second

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server serving the metrics
// gathered by gatherer at /metrics, and a health endpoint at /health.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).
		Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return &Server{
		server: httpserver.New(
			httpserver.Address(address),
			httpserver.Handler(router),
			httpserver.WithLogger("metrics", logger),
			httpserver.WithTimeouts(httpserver.Timeouts{Read: scrapeReadTimeout}),
		),
	}
}

// Start will start the metrics server.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("Started metrics server at http://%s/metrics", s.server.Address())
		return nil
	case err := <-s.done:
		close(s.done)
		cancel()
		if err != nil {
			return err
		}
		return errExitedUnexpectedly
	}
}

// Address returns the listening address of the started server.
func (s *Server) Address() string {
	return s.server.Address()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()
	select {
	case err := <-s.done:
		close(s.done)
		return err
	case <-time.NewTimer(30 * time.Second).C:
		return fmt.Errorf("metrics server exit timeout")
	}
}
