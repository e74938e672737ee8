// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "secretstore"

// Collectors records the bridge activity as Prometheus metrics.
type Collectors struct {
	pendingTasks       *prometheus.CounterVec
	pendingTasksFailed *prometheus.CounterVec
	responses          *prometheus.CounterVec
	tasksForwarded     *prometheus.CounterVec
	blocksSkipped      prometheus.Counter
	resultsDispatched  *prometheus.CounterVec
	resultsDropped     prometheus.Counter
}

// NewCollectors creates the collectors and registers them with the
// registerer. Collectors already registered are reused.
func NewCollectors(registerer prometheus.Registerer) (c *Collectors, err error) {
	c = &Collectors{
		pendingTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bridge",
			Name:      "pending_tasks_total",
			Help:      "Number of pending tasks read from the chain, by category.",
		}, []string{"category"}),
		pendingTasksFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bridge",
			Name:      "pending_tasks_failures_total",
			Help:      "Number of failed pending tasks reads, by category.",
		}, []string{"category"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bridge",
			Name:      "responses_total",
			Help:      "Number of responses handled, by response kind and outcome.",
		}, []string{"response", "outcome"}),
		tasksForwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "tasks_forwarded_total",
			Help:      "Number of tasks forwarded to the key server, by task kind.",
		}, []string{"kind"}),
		blocksSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "blocks_skipped_total",
			Help:      "Number of blocks skipped while not part of the key servers set.",
		}),
		resultsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "results_dispatched_total",
			Help:      "Number of key server results published, by task kind and success.",
		}, []string{"kind", "success"}),
		resultsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "results_dropped_total",
			Help:      "Number of malformed key server results dropped.",
		}),
	}

	for _, vec := range []**prometheus.CounterVec{
		&c.pendingTasks, &c.pendingTasksFailed, &c.responses, &c.tasksForwarded, &c.resultsDispatched,
	} {
		registered, err := register(registerer, *vec)
		if err != nil {
			return nil, err
		}
		*vec = registered.(*prometheus.CounterVec)
	}

	for _, counter := range []*prometheus.Counter{&c.blocksSkipped, &c.resultsDropped} {
		registered, err := register(registerer, *counter)
		if err != nil {
			return nil, err
		}
		*counter = registered.(prometheus.Counter)
	}

	return c, nil
}

func register(registerer prometheus.Registerer, collector prometheus.Collector) (
	prometheus.Collector, error) {
	err := registerer.Register(collector)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		return alreadyRegistered.ExistingCollector, nil
	} else if err != nil {
		return nil, err
	}
	return collector, nil
}

// PendingTasksFetched records tasks read from a pending tasks category.
func (c *Collectors) PendingTasksFetched(category string, tasks int) {
	c.pendingTasks.WithLabelValues(category).Add(float64(tasks))
}

// PendingTasksFetchFailed records a failed read of a pending tasks category.
func (c *Collectors) PendingTasksFetchFailed(category string) {
	c.pendingTasksFailed.WithLabelValues(category).Inc()
}

// ResponseOutcome records the outcome of a response submission.
func (c *Collectors) ResponseOutcome(response, outcome string) {
	c.responses.WithLabelValues(response, outcome).Inc()
}

// TaskForwarded records a task forwarded to the key server.
func (c *Collectors) TaskForwarded(kind string) {
	c.tasksForwarded.WithLabelValues(kind).Inc()
}

// BlockSkipped records a block skipped by the service.
func (c *Collectors) BlockSkipped() {
	c.blocksSkipped.Inc()
}

// ResultDispatched records a key server result published.
func (c *Collectors) ResultDispatched(kind string, success bool) {
	c.resultsDispatched.WithLabelValues(kind, strconv.FormatBool(success)).Inc()
}

// ResultDropped records a malformed key server result.
func (c *Collectors) ResultDropped() {
	c.resultsDropped.Inc()
}
