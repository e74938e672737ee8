// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import (
	"context"

	"github.com/ChainSafe/gossamer-secretstore/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "secretstore"))

// Config holds the configuration of the secret store bridge.
type Config struct {
	LogLvl log.Level
	// Self is the identity of the key server running the bridge.
	Self KeyServerID
	// Metrics records the bridge activity. It defaults to no metrics.
	Metrics Metrics
}

// StartService runs the bridge between the chain and the key server runtime.
// Blocks received on newBlocks are handed to the runtime in the same order,
// and session results are published on chain by a ResponseSubmitter.
// It returns when the runtime returns, once blocks are no longer forwarded.
func StartService(ctx context.Context, cfg Config, blockchain Blockchain,
	transactionPool TransactionPool, runtime Runtime, newBlocks <-chan BlockID) error {
	if blockchain == nil {
		return ErrNilBlockchain
	}

	if transactionPool == nil {
		return ErrNilTransactionPool
	}

	if runtime == nil {
		return ErrNilRuntime
	}

	if newBlocks == nil {
		return ErrNilBlocksChannel
	}

	logger.Patch(log.SetLevel(cfg.LogLvl))

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewNoopMetrics()
	}

	publisher := NewResponseSubmitter(blockchain, transactionPool, cfg.Self, metrics)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	blocks := make(chan BlockTasks)
	forwarderDone := make(chan struct{})
	go func() {
		defer close(forwarderDone)
		forwardBlocks(ctx, newBlocks, blocks, blockchain, metrics)
	}()

	logger.Infof("Starting secret store bridge for key server %s", cfg.Self)
	err := runtime.Run(ctx, blocks, publisher)

	cancel()
	<-forwarderDone
	return err
}

// forwardBlocks wraps each block id received into a block, preserving
// their order. The blocks channel is closed once newBlocks is closed
// or the context is done.
func forwardBlocks(ctx context.Context, newBlocks <-chan BlockID, blocks chan<- BlockTasks,
	blockchain Blockchain, metrics Metrics) {
	defer close(blocks)

	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-newBlocks:
			if !ok {
				return
			}

			select {
			case blocks <- NewBlock(id, blockchain, metrics):
			case <-ctx.Done():
				return
			}
		}
	}
}
