// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/gossamer-secretstore/internal/log"
	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	"github.com/redis/go-redis/v9"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "queue"))

// SetLogLevel sets the log level of the package.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

// TasksKey returns the key of the list holding the tasks of the queue.
func TasksKey(name string) string {
	return name + ":tasks"
}

// ResultsKey returns the key of the list holding the results of the queue.
func ResultsKey(name string) string {
	return name + ":results"
}

// Queue exchanges tasks and results with the key server over Redis lists.
// Both lists are first in, first out.
type Queue struct {
	rdb  *redis.Client
	name string
}

// NewQueue creates a queue using the Redis server of the options.
func NewQueue(opts *redis.Options, name string) (*Queue, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Queue{
		rdb:  redis.NewClient(opts),
		name: name,
	}, nil
}

// Close closes the Redis connection.
func (q *Queue) Close() error {
	return q.rdb.Close()
}

// Ping checks the Redis server is reachable.
func (q *Queue) Ping(ctx context.Context) error {
	return q.rdb.Ping(ctx).Err()
}

// PushTask appends the task to the tasks list.
func (q *Queue) PushTask(ctx context.Context, task secretstore.Task) error {
	err := q.push(ctx, TasksKey(q.name), task)
	if err != nil {
		return fmt.Errorf("cannot push task %s: %w", task, err)
	}

	logger.Tracef("Pushed task %s to queue %s", task, q.name)
	return nil
}

// PopTask removes the oldest task of the tasks list, waiting up to the
// timeout for one to be pushed. ErrEmpty is returned on timeout.
func (q *Queue) PopTask(ctx context.Context, timeout time.Duration) (task secretstore.Task, err error) {
	err = q.pop(ctx, TasksKey(q.name), timeout, &task)
	if err != nil {
		return task, err
	}
	return task, nil
}

// PushResult appends the result to the results list.
func (q *Queue) PushResult(ctx context.Context, result Result) error {
	err := q.push(ctx, ResultsKey(q.name), result)
	if err != nil {
		return fmt.Errorf("cannot push result %s: %w", result, err)
	}
	return nil
}

// PopResult removes the oldest result of the results list, waiting up to
// the timeout for one to be pushed. ErrEmpty is returned on timeout.
func (q *Queue) PopResult(ctx context.Context, timeout time.Duration) (result Result, err error) {
	err = q.pop(ctx, ResultsKey(q.name), timeout, &result)
	if err != nil {
		return result, err
	}

	logger.Tracef("Popped result %s from queue %s", result, q.name)
	return result, nil
}

func (q *Queue) push(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cannot marshal: %w", err)
	}

	return q.rdb.LPush(ctx, key, data).Err()
}

func (q *Queue) pop(ctx context.Context, key string, timeout time.Duration, value interface{}) error {
	values, err := q.rdb.BRPop(ctx, timeout, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrEmpty
	} else if err != nil {
		return fmt.Errorf("cannot pop from %s: %w", key, err)
	}

	// BRPOP replies with the key and the value.
	if len(values) != 2 {
		return fmt.Errorf("unexpected reply popping from %s: %v", key, values)
	}

	err = json.Unmarshal([]byte(values[1]), value)
	if err != nil {
		return fmt.Errorf("cannot unmarshal value popped from %s: %w", key, err)
	}
	return nil
}
