// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import (
	"github.com/ChainSafe/gossamer-secretstore/internal/log"
)

var _ BlockTasks = (*Block)(nil)

// Block is a block observed by the bridge, giving access to the
// tasks it contains and to the pending tasks at this block.
type Block struct {
	id         BlockID
	blockchain Blockchain
	logger     log.LeveledLogger
	metrics    Metrics
}

// NewBlock returns the block for the given id. The blockchain is
// only queried when tasks are requested.
func NewBlock(id BlockID, blockchain Blockchain, metrics Metrics) *Block {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &Block{
		id:         id,
		blockchain: blockchain,
		logger:     logger,
		metrics:    metrics,
	}
}

// ID returns the block id.
func (b *Block) ID() BlockID {
	return b.id
}

// NewTasks returns the tasks requested by the events of the block.
// Events of the block are read on the first call to Next.
func (b *Block) NewTasks() TaskIterator {
	return &newTasks{
		block:  b.id,
		fetch:  b.blockchain.BlockEvents,
		logger: b.logger,
	}
}

// PendingTasks returns the pending tasks of all categories at this block,
// starting with server key generation tasks, followed by server key
// retrieval, document key store and document key shadow retrieval tasks.
func (b *Block) PendingTasks() TaskIterator {
	fetchers := map[TaskCategory]func(BlockID, Range) ([]Task, error){
		ServerKeyGeneration:        b.blockchain.ServerKeyGenerationTasks,
		ServerKeyRetrieval:         b.blockchain.ServerKeyRetrievalTasks,
		DocumentKeyStore:           b.blockchain.DocumentKeyStoreTasks,
		DocumentKeyShadowRetrieval: b.blockchain.DocumentKeyShadowRetrievalTasks,
	}

	pagers := make([]*pendingTasksPager, 0, len(TaskCategories))
	for _, category := range TaskCategories {
		fetch := fetchers[category]
		id := b.id
		pager := newPendingTasksPager(category, func(r Range) ([]Task, error) {
			return fetch(id, r)
		}, b.logger, b.metrics)
		pagers = append(pagers, pager)
	}

	return &pendingTasks{pagers: pagers}
}

// CurrentKeyServersSet returns the current key servers set, or an
// empty set if it cannot be read.
func (b *Block) CurrentKeyServersSet() []KeyServerID {
	keyServers, err := b.blockchain.CurrentKeyServersSet()
	if err != nil {
		b.logger.Errorf("Failed to read current key servers set: %s", err)
		return nil
	}
	return keyServers
}

// newTasks iterates over the tasks converted from block events.
type newTasks struct {
	block   BlockID
	fetch   func(BlockID) ([]Event, error)
	fetched bool
	events  []Event
	logger  log.LeveledLogger
}

func (n *newTasks) Next() (task Task, ok bool) {
	if !n.fetched {
		n.fetched = true
		events, err := n.fetch(n.block)
		if err != nil {
			n.logger.Errorf("Failed to read events of block %s: %s", n.block, err)
			events = nil
		}
		n.events = events
	}

	for len(n.events) > 0 {
		event := n.events[0]
		n.events = n.events[1:]

		task, ok = eventIntoTask(event)
		if ok {
			return task, true
		}
		n.logger.Tracef("Ignoring event %s of block %s", event.EventName(), n.block)
	}

	return task, false
}
