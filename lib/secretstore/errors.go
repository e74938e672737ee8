// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import (
	"errors"
)

var (
	// ErrNilBlockchain is returned when starting the service without blockchain.
	ErrNilBlockchain = errors.New("cannot have nil blockchain")
	// ErrNilTransactionPool is returned when starting the service without transaction pool.
	ErrNilTransactionPool = errors.New("cannot have nil transaction pool")
	// ErrNilRuntime is returned when starting the service without runtime.
	ErrNilRuntime = errors.New("cannot have nil runtime")
	// ErrNilBlocksChannel is returned when starting the service without new blocks.
	ErrNilBlocksChannel = errors.New("cannot have nil new blocks channel")

	// ErrRequesterRecovery is returned when the requester public key
	// cannot be recovered from its signature.
	ErrRequesterRecovery = errors.New("cannot recover requester public key")
	// ErrRequesterKindUnknown is returned for requesters without identification.
	ErrRequesterKindUnknown = errors.New("requester kind is unknown")

	// ErrThresholdTooLarge is returned when a threshold does not fit the call.
	ErrThresholdTooLarge = errors.New("threshold is too large")

	errNoParticipants = errors.New("no participants in document key shadow retrieval")
)
