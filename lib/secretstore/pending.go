// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import (
	"math"

	"github.com/ChainSafe/gossamer-secretstore/internal/log"
)

// PendingTasksPageSize is the number of pending tasks requested at once.
const PendingTasksPageSize = 16

// pendingTasksFetcher returns the pending tasks of a category in the
// index range. It returns at most r.Len() tasks.
type pendingTasksFetcher func(r Range) ([]Task, error)

// pendingTasksPager lazily iterates over the pending tasks of a category,
// fetching them page by page.
type pendingTasksPager struct {
	category TaskCategory
	fetch    pendingTasksFetcher
	pageSize uint64
	// pending holds fetched tasks not yet returned, in fetch order.
	pending []Task
	// remaining is the index range not yet fetched. It is emptied
	// once a page is shorter than requested.
	remaining Range
	logger    log.LeveledLogger
	metrics   Metrics
}

func newPendingTasksPager(category TaskCategory, fetch pendingTasksFetcher,
	logger log.LeveledLogger, metrics Metrics) *pendingTasksPager {
	return &pendingTasksPager{
		category:  category,
		fetch:     fetch,
		pageSize:  PendingTasksPageSize,
		remaining: Range{Start: 0, End: math.MaxUint64},
		logger:    logger,
		metrics:   metrics,
	}
}

// Next returns the next pending task of the category.
func (p *pendingTasksPager) Next() (task Task, ok bool) {
	for {
		if len(p.pending) > 0 {
			task = p.pending[0]
			p.pending[0] = Task{}
			p.pending = p.pending[1:]
			return task, true
		}

		if p.remaining.Empty() {
			return task, false
		}

		window := p.nextWindow()
		tasks, err := p.fetch(window)
		if err != nil {
			p.logger.Errorf("Failed to read pending tasks: %s", err)
			p.metrics.PendingTasksFetchFailed(p.category.String())
			tasks = nil
		} else {
			p.metrics.PendingTasksFetched(p.category.String(), len(tasks))
		}

		p.pending = append(p.pending, tasks...)

		if uint64(len(tasks)) == p.pageSize {
			p.remaining.Start = window.End
		} else {
			// a short page is the end of the backlog, and so is a failed
			// fetch: the next scan starts over from the first index.
			p.remaining.Start = p.remaining.End
		}
	}
}

func (p *pendingTasksPager) nextWindow() Range {
	end := p.remaining.End
	if p.remaining.Len() > p.pageSize {
		end = p.remaining.Start + p.pageSize
	}
	return Range{Start: p.remaining.Start, End: end}
}

// pendingTasks chains the pending tasks of all categories,
// in the order of TaskCategories.
type pendingTasks struct {
	pagers  []*pendingTasksPager
	current int
}

// Next returns the next pending task, moving to the next category
// once the current one is exhausted.
func (p *pendingTasks) Next() (task Task, ok bool) {
	for p.current < len(p.pagers) {
		task, ok = p.pagers[p.current].Next()
		if ok {
			return task, true
		}
		p.pagers[p.current] = nil
		p.current++
	}
	return task, false
}
