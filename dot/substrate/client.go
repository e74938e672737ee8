// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"fmt"

	"github.com/ChainSafe/gossamer-secretstore/internal/log"
	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "substrate"))

// SetLogLevel sets the log level of the package.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

// Client is the JSON-RPC client of a substrate node.
// It is satisfied by the go-substrate-rpc-client client.
type Client interface {
	Call(result interface{}, method string, args ...interface{}) error
}

// withBlock appends the block hash to the RPC arguments. No hash is
// appended for the best block, so the node uses its best block.
func withBlock(block secretstore.BlockID, args ...interface{}) []interface{} {
	if hash, ok := block.Hash(); ok {
		return append(args, hash.Hex())
	}
	return args
}

// runtimeVersion returns the runtime version at the block.
func runtimeVersion(client Client, block secretstore.BlockID) (version types.RuntimeVersion, err error) {
	var result *types.RuntimeVersion
	err = client.Call(&result, "state_getRuntimeVersion", withBlock(block)...)
	if err != nil {
		return version, fmt.Errorf("cannot get runtime version at block %s: %w", block, err)
	}
	if result == nil {
		return version, fmt.Errorf("%w: at block %s", errEmptyRuntimeVersion, block)
	}
	return *result, nil
}

// blockHash returns the hash of the block with the given number.
func blockHash(client Client, number uint64) (hash common.Hash, err error) {
	var result string
	err = client.Call(&result, "chain_getBlockHash", number)
	if err != nil {
		return hash, fmt.Errorf("cannot get hash of block %d: %w", number, err)
	}
	if result == "" {
		return hash, fmt.Errorf("%w: for block %d", errEmptyBlockHash, number)
	}

	b, err := hexutil.Decode(result)
	if err != nil {
		return hash, fmt.Errorf("cannot decode hash of block %d: %w", number, err)
	}
	return common.BytesToHash(b), nil
}
