// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package service

import (
	"context"
	"time"

	"github.com/ChainSafe/gossamer-secretstore/dot/queue"
	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
)

// TaskQueue hands tasks to the key server and collects its results.
type TaskQueue interface {
	PushTask(ctx context.Context, task secretstore.Task) error
	PopResult(ctx context.Context, timeout time.Duration) (queue.Result, error)
}

// Metrics records the scheduling activity.
type Metrics interface {
	TaskForwarded(kind string)
	BlockSkipped()
	ResultDispatched(kind string, success bool)
	ResultDropped()
}

type noopMetrics struct{}

func (noopMetrics) TaskForwarded(string)          {}
func (noopMetrics) BlockSkipped()                 {}
func (noopMetrics) ResultDispatched(string, bool) {}
func (noopMetrics) ResultDropped()                {}
