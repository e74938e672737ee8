// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/gossamer-secretstore/dot/queue"
	"github.com/ChainSafe/gossamer-secretstore/internal/log"
	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "service"))

const (
	// DefaultPendingTasksInterval is the default number of blocks
	// between two scans of the pending tasks.
	DefaultPendingTasksInterval = 4
	// DefaultMaxPendingTasks is the default maximum number of pending
	// tasks read in a single scan.
	DefaultMaxPendingTasks = 64
	// DefaultResultsTimeout is the default time to wait for a result.
	DefaultResultsTimeout = time.Second
)

var _ secretstore.Runtime = (*Service)(nil)

// Config is the service configuration.
type Config struct {
	LogLvl log.Level
	// Self is the identity of the key server.
	Self  secretstore.KeyServerID
	Queue TaskQueue
	// PendingTasksInterval is the number of blocks between two scans of
	// the pending tasks. It defaults to DefaultPendingTasksInterval.
	PendingTasksInterval uint
	// MaxPendingTasks bounds the number of pending tasks read in a single
	// scan, zero meaning no bound. Tasks left out are picked up by the
	// next scans.
	MaxPendingTasks uint
	// ResultsTimeout is the time to wait for a result before checking
	// the context again. It defaults to DefaultResultsTimeout.
	ResultsTimeout time.Duration
	Metrics        Metrics
}

// Service schedules the tasks of the blocks this key server is responsible
// for on the task queue, and publishes the results of the key server.
type Service struct {
	self                 secretstore.KeyServerID
	queue                TaskQueue
	pendingTasksInterval uint
	maxPendingTasks      uint
	resultsTimeout       time.Duration
	metrics              Metrics

	// blocks is the number of blocks processed while being part
	// of the key servers set.
	blocks uint
}

// NewService creates a new service.
func NewService(cfg Config) (*Service, error) {
	if cfg.Queue == nil {
		return nil, ErrNilQueue
	}

	logger.Patch(log.SetLevel(cfg.LogLvl))

	s := &Service{
		self:                 cfg.Self,
		queue:                cfg.Queue,
		pendingTasksInterval: cfg.PendingTasksInterval,
		maxPendingTasks:      cfg.MaxPendingTasks,
		resultsTimeout:       cfg.ResultsTimeout,
		metrics:              cfg.Metrics,
	}

	if s.pendingTasksInterval == 0 {
		s.pendingTasksInterval = DefaultPendingTasksInterval
	}

	if s.resultsTimeout == 0 {
		s.resultsTimeout = DefaultResultsTimeout
	}

	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}

	return s, nil
}

// Run processes the blocks in order until the blocks channel is closed or
// the context is done, while publishing the results of the key server.
// It returns the context error if the context is done.
func (s *Service) Run(ctx context.Context, blocks <-chan secretstore.BlockTasks,
	publisher secretstore.Publisher) error {
	if publisher == nil {
		return ErrNilPublisher
	}

	resultsCtx, cancel := context.WithCancel(ctx)
	resultsDone := make(chan struct{})
	go func() {
		defer close(resultsDone)
		s.processResults(resultsCtx, publisher)
	}()

	defer func() {
		cancel()
		<-resultsDone
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case block, ok := <-blocks:
			if !ok {
				logger.Info("Blocks channel closed, stopping")
				return nil
			}
			s.processBlock(ctx, block)
		}
	}
}

func (s *Service) processBlock(ctx context.Context, block secretstore.BlockTasks) {
	owned, ok := newResponsibility(s.self, block.CurrentKeyServersSet())
	if !ok {
		logger.Debugf("Key server %s is not part of the key servers set at block %s, skipping",
			s.self, block.ID())
		s.metrics.BlockSkipped()
		return
	}

	s.blocks++

	forwarded := s.forwardTasks(ctx, block.NewTasks(), owned, 0)

	if (s.blocks-1)%s.pendingTasksInterval == 0 {
		forwarded += s.forwardTasks(ctx, block.PendingTasks(), owned, s.maxPendingTasks)
	}

	logger.Debugf("Forwarded %d tasks of block %s", forwarded, block.ID())
}

// forwardTasks pushes the tasks owned by the key server to the queue, reading
// at most limit tasks when limit is not zero. It returns the number of tasks pushed.
func (s *Service) forwardTasks(ctx context.Context, tasks secretstore.TaskIterator,
	owned responsibility, limit uint) (forwarded int) {
	for read := uint(0); limit == 0 || read < limit; read++ {
		if ctx.Err() != nil {
			return forwarded
		}

		task, ok := tasks.Next()
		if !ok {
			return forwarded
		}

		if !owned.owns(task.KeyID) {
			continue
		}

		err := s.queue.PushTask(ctx, task)
		if err != nil {
			logger.Errorf("Failed to push task %s: %s", task, err)
			continue
		}

		s.metrics.TaskForwarded(string(task.Kind))
		forwarded++
	}
	return forwarded
}

func (s *Service) processResults(ctx context.Context, publisher secretstore.Publisher) {
	for {
		result, err := s.queue.PopResult(ctx, s.resultsTimeout)
		switch {
		case ctx.Err() != nil:
			return
		case errors.Is(err, queue.ErrEmpty):
			continue
		case err != nil:
			logger.Errorf("Failed to pop result: %s", err)
			select {
			case <-time.After(s.resultsTimeout):
			case <-ctx.Done():
				return
			}
			continue
		}

		err = result.Validate()
		if err == nil {
			err = dispatch(publisher, result)
		}

		if err != nil {
			logger.Warnf("Dropping result %s: %s", result, err)
			s.metrics.ResultDropped()
			continue
		}

		s.metrics.ResultDispatched(string(result.Kind), result.Success)
	}
}

// dispatch publishes the result with the publisher method of its kind.
func dispatch(publisher secretstore.Publisher, result queue.Result) error {
	origin, keyID := result.Origin, result.KeyID

	switch result.Kind {
	case secretstore.GenerateServerKey:
		if result.Success {
			publisher.PublishGeneratedServerKey(origin, keyID, *result.ServerKeyGeneration)
		} else {
			publisher.PublishServerKeyGenerationError(origin, keyID)
		}
	case secretstore.RetrieveServerKey:
		if result.Success {
			publisher.PublishRetrievedServerKey(origin, keyID, *result.ServerKeyRetrieval)
		} else {
			publisher.PublishServerKeyRetrievalError(origin, keyID)
		}
	case secretstore.StoreDocumentKey:
		if result.Success {
			publisher.PublishStoredDocumentKey(origin, keyID)
		} else {
			publisher.PublishDocumentKeyStoreError(origin, keyID)
		}
	case secretstore.RetrieveShadowDocumentKey:
		requester := *result.Requester
		switch {
		case result.Common && result.Success:
			publisher.PublishRetrievedDocumentKeyCommon(origin, keyID, requester,
				*result.DocumentKeyCommonRetrieval)
		case result.Common:
			publisher.PublishDocumentKeyCommonRetrievalError(origin, keyID, requester)
		case result.Success:
			publisher.PublishRetrievedDocumentKeyPersonal(origin, keyID, requester,
				*result.DocumentKeyShadowRetrieval)
		default:
			publisher.PublishDocumentKeyPersonalRetrievalError(origin, keyID, requester)
		}
	default:
		return fmt.Errorf("%w: %s", errResultKindUnknown, result.Kind)
	}
	return nil
}
