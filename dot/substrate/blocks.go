// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"context"

	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// HeadsSubscription is a subscription to block headers.
// It is satisfied by the go-substrate-rpc-client finalized heads subscription.
type HeadsSubscription interface {
	Chan() <-chan types.Header
	Err() <-chan error
	Unsubscribe()
}

// FinalizedBlocks streams the ids of finalized blocks received on the
// subscription, in order. The returned channel is closed when the context
// is done or the subscription fails, and the subscription is then
// unsubscribed.
func FinalizedBlocks(ctx context.Context, client Client, subscription HeadsSubscription) <-chan secretstore.BlockID {
	blocks := make(chan secretstore.BlockID)

	go func() {
		defer close(blocks)
		defer subscription.Unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-subscription.Err():
				if ok && err != nil {
					logger.Errorf("Finalized heads subscription failed: %s", err)
				}
				return
			case header, ok := <-subscription.Chan():
				if !ok {
					return
				}

				number := uint64(header.Number)
				hash, err := blockHash(client, number)
				if err != nil {
					logger.Errorf("Failed to read finalized block: %s", err)
					continue
				}

				logger.Tracef("Finalized block %d: %s", number, hash)
				select {
				case blocks <- secretstore.BlockHash(hash):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return blocks
}
