// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package queue

import "errors"

var (
	// ErrEmpty is returned when nothing was popped before the timeout.
	ErrEmpty = errors.New("queue is empty")
	// ErrEmptyName is returned when creating a queue without name.
	ErrEmptyName = errors.New("queue name cannot be empty")
	// ErrResultMalformed is returned for results missing the artifacts of their kind.
	ErrResultMalformed = errors.New("result is malformed")
)
