// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"errors"
)

var (
	// ErrNilClient is returned when creating an adapter without RPC client.
	ErrNilClient = errors.New("cannot have nil client")
	// ErrNilMetadataCache is returned when creating an adapter without metadata cache.
	ErrNilMetadataCache = errors.New("cannot have nil metadata cache")
	// ErrCallNotSupported is returned when submitting an unknown secret store call.
	ErrCallNotSupported = errors.New("secret store call is not supported")

	errEmptyMetadata       = errors.New("empty metadata")
	errEmptyRuntimeVersion = errors.New("empty runtime version")
	errEmptyCallResult     = errors.New("empty runtime call result")
	errEmptyBlockHash      = errors.New("empty block hash")
	errUnknownEvent        = errors.New("unknown event")
)
