// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

// Outcomes of a response submission.
const (
	OutcomeSubmitted     = "submitted"
	OutcomeNotRequired   = "not_required"
	OutcomeCheckFailed   = "check_failed"
	OutcomePrepareFailed = "prepare_failed"
	OutcomeSubmitFailed  = "submit_failed"
)

type noopMetrics struct{}

// NewNoopMetrics returns metrics recording nothing.
func NewNoopMetrics() Metrics { return noopMetrics{} }

func (noopMetrics) PendingTasksFetched(string, int) {}
func (noopMetrics) PendingTasksFetchFailed(string)  {}
func (noopMetrics) ResponseOutcome(string, string)  {}
