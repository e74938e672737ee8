// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package service

import "errors"

var (
	// ErrNilQueue is returned when creating a service without task queue.
	ErrNilQueue = errors.New("cannot have nil task queue")
	// ErrNilPublisher is returned when running a service without publisher.
	ErrNilPublisher = errors.New("cannot have nil publisher")

	errResultKindUnknown = errors.New("result task kind is unknown")
)
