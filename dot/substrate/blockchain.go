// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"fmt"
	"math"

	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RuntimeAPIPrefix is the prefix of the secret store runtime API methods.
const RuntimeAPIPrefix = "SecretStoreRuntimeApi_"

var _ secretstore.Blockchain = (*Blockchain)(nil)

// MetadataSource provides the runtime metadata at a block.
type MetadataSource interface {
	Metadata(block secretstore.BlockID) (*types.Metadata, types.RuntimeVersion, error)
}

// Blockchain reads the secret store module state of a substrate node.
type Blockchain struct {
	client   Client
	metadata MetadataSource
}

// NewBlockchain creates a blockchain reading the node state using the client.
func NewBlockchain(client Client, metadata MetadataSource) (*Blockchain, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	if metadata == nil {
		return nil, ErrNilMetadataCache
	}

	return &Blockchain{
		client:   client,
		metadata: metadata,
	}, nil
}

// BlockEvents returns the secret store module events of the block, in the
// order they were emitted. Events following a record that cannot be decoded
// are not returned.
func (b *Blockchain) BlockEvents(block secretstore.BlockID) ([]secretstore.Event, error) {
	meta, _, err := b.metadata.Metadata(block)
	if err != nil {
		return nil, err
	}

	key, err := types.CreateStorageKey(meta, "System", "Events", nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create events storage key: %w", err)
	}

	var encoded string
	err = b.client.Call(&encoded, "state_getStorage", withBlock(block, hexutil.Encode(key))...)
	if err != nil {
		return nil, fmt.Errorf("cannot get events of block %s: %w", block, err)
	}
	if encoded == "" {
		return nil, nil
	}

	raw, err := hexutil.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("cannot decode events of block %s: %w", block, err)
	}

	events, err := decodeEvents(meta, raw)
	if err != nil {
		// requests of the remaining events are picked up by the pending tasks scans.
		logger.Warnf("Cannot decode all events of block %s, keeping %d secret store events: %s",
			block, len(events), err)
	}
	return events, nil
}

// CurrentKeyServersSet returns the key servers set at the best block.
func (b *Blockchain) CurrentKeyServersSet() ([]secretstore.KeyServerID, error) {
	var keyServers []types.H160
	err := b.callRuntimeAPI(secretstore.BestBlock, "current_key_servers_set", &keyServers)
	if err != nil {
		return nil, err
	}

	ids := make([]secretstore.KeyServerID, len(keyServers))
	for i, keyServer := range keyServers {
		ids[i] = common.Address(keyServer)
	}
	return ids, nil
}

type serverKeyGenerationTask struct {
	KeyID     types.H256
	Requester types.H160
	Threshold types.U8
}

// ServerKeyGenerationTasks returns the pending server key generation tasks.
func (b *Blockchain) ServerKeyGenerationTasks(block secretstore.BlockID, r secretstore.Range) (
	[]secretstore.Task, error) {
	var pending []serverKeyGenerationTask
	err := b.callRuntimeAPI(block, "server_key_generation_tasks", &pending, rangeArgs(r)...)
	if err != nil {
		return nil, err
	}

	tasks := make([]secretstore.Task, len(pending))
	for i, task := range pending {
		tasks[i] = secretstore.NewGenerateServerKeyTask(secretstore.Address{}, common.Hash(task.KeyID),
			secretstore.AddressRequester(common.Address(task.Requester)), uint(task.Threshold))
	}
	return tasks, nil
}

// IsServerKeyGenerationResponseRequired returns true if the key server has
// not yet responded to the server key generation request.
func (b *Blockchain) IsServerKeyGenerationResponseRequired(keyID secretstore.ServerKeyID,
	keyServer secretstore.KeyServerID) (required bool, err error) {
	err = b.callRuntimeAPI(secretstore.BestBlock, "is_server_key_generation_response_required", &required,
		types.NewH256(keyID[:]), types.NewH160(keyServer[:]))
	return required, err
}

// ServerKeyRetrievalTasks returns the pending server key retrieval tasks.
func (b *Blockchain) ServerKeyRetrievalTasks(block secretstore.BlockID, r secretstore.Range) (
	[]secretstore.Task, error) {
	var pending []types.H256
	err := b.callRuntimeAPI(block, "server_key_retrieval_tasks", &pending, rangeArgs(r)...)
	if err != nil {
		return nil, err
	}

	tasks := make([]secretstore.Task, len(pending))
	for i, keyID := range pending {
		tasks[i] = secretstore.NewRetrieveServerKeyTask(secretstore.Address{}, common.Hash(keyID))
	}
	return tasks, nil
}

// IsServerKeyRetrievalResponseRequired returns true if the key server has
// not yet responded to the server key retrieval request.
func (b *Blockchain) IsServerKeyRetrievalResponseRequired(keyID secretstore.ServerKeyID,
	keyServer secretstore.KeyServerID) (required bool, err error) {
	err = b.callRuntimeAPI(secretstore.BestBlock, "is_server_key_retrieval_response_required", &required,
		types.NewH256(keyID[:]), types.NewH160(keyServer[:]))
	return required, err
}

type documentKeyStoreTask struct {
	KeyID          types.H256
	Author         types.H160
	CommonPoint    types.H512
	EncryptedPoint types.H512
}

// DocumentKeyStoreTasks returns the pending document key store tasks.
func (b *Blockchain) DocumentKeyStoreTasks(block secretstore.BlockID, r secretstore.Range) (
	[]secretstore.Task, error) {
	var pending []documentKeyStoreTask
	err := b.callRuntimeAPI(block, "document_key_store_tasks", &pending, rangeArgs(r)...)
	if err != nil {
		return nil, err
	}

	tasks := make([]secretstore.Task, len(pending))
	for i, task := range pending {
		tasks[i] = secretstore.NewStoreDocumentKeyTask(secretstore.Address{}, common.Hash(task.KeyID),
			secretstore.AddressRequester(common.Address(task.Author)),
			secretstore.Public(task.CommonPoint), secretstore.Public(task.EncryptedPoint))
	}
	return tasks, nil
}

// IsDocumentKeyStoreResponseRequired returns true if the key server has
// not yet responded to the document key store request.
func (b *Blockchain) IsDocumentKeyStoreResponseRequired(keyID secretstore.ServerKeyID,
	keyServer secretstore.KeyServerID) (required bool, err error) {
	err = b.callRuntimeAPI(secretstore.BestBlock, "is_document_key_store_response_required", &required,
		types.NewH256(keyID[:]), types.NewH160(keyServer[:]))
	return required, err
}

type documentKeyShadowRetrievalTask struct {
	KeyID     types.H256
	Requester types.H160
}

// DocumentKeyShadowRetrievalTasks returns the pending document key shadow
// retrieval tasks.
func (b *Blockchain) DocumentKeyShadowRetrievalTasks(block secretstore.BlockID, r secretstore.Range) (
	[]secretstore.Task, error) {
	var pending []documentKeyShadowRetrievalTask
	err := b.callRuntimeAPI(block, "document_key_shadow_retrieval_tasks", &pending, rangeArgs(r)...)
	if err != nil {
		return nil, err
	}

	tasks := make([]secretstore.Task, len(pending))
	for i, task := range pending {
		tasks[i] = secretstore.NewRetrieveShadowDocumentKeyTask(secretstore.Address{}, common.Hash(task.KeyID),
			secretstore.AddressRequester(common.Address(task.Requester)))
	}
	return tasks, nil
}

// IsDocumentKeyShadowRetrievalResponseRequired returns true if the key server
// has not yet responded to the requester document key shadow retrieval request.
func (b *Blockchain) IsDocumentKeyShadowRetrievalResponseRequired(keyID secretstore.ServerKeyID,
	requester secretstore.Address, keyServer secretstore.KeyServerID) (required bool, err error) {
	err = b.callRuntimeAPI(secretstore.BestBlock, "is_document_key_shadow_retrieval_response_required",
		&required, types.NewH256(keyID[:]), types.NewH160(requester[:]), types.NewH160(keyServer[:]))
	return required, err
}

// callRuntimeAPI calls the secret store runtime API method at the block
// with the SCALE encoded arguments, and decodes its result into result.
func (b *Blockchain) callRuntimeAPI(block secretstore.BlockID, method string,
	result interface{}, args ...interface{}) error {
	var encodedArgs []byte
	for _, arg := range args {
		encoded, err := codec.Encode(arg)
		if err != nil {
			return fmt.Errorf("cannot encode arguments of %s: %w", method, err)
		}
		encodedArgs = append(encodedArgs, encoded...)
	}

	var encoded string
	err := b.client.Call(&encoded, "state_call",
		withBlock(block, RuntimeAPIPrefix+method, hexutil.Encode(encodedArgs))...)
	if err != nil {
		return fmt.Errorf("cannot call %s at block %s: %w", method, block, err)
	}
	if encoded == "" {
		return fmt.Errorf("%w: %s at block %s", errEmptyCallResult, method, block)
	}

	err = codec.DecodeFromHex(encoded, result)
	if err != nil {
		return fmt.Errorf("cannot decode result of %s: %w", method, err)
	}
	return nil
}

// rangeArgs returns the runtime API arguments for the index range,
// clipped to the u32 indexes of the runtime.
func rangeArgs(r secretstore.Range) []interface{} {
	clip := func(index uint64) types.U32 {
		if index > math.MaxUint32 {
			return types.U32(math.MaxUint32)
		}
		return types.U32(index)
	}
	return []interface{}{clip(r.Start), clip(r.End)}
}
