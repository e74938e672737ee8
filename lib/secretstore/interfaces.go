// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import (
	"context"
	"fmt"
)

// Blockchain gives read access to the chain hosting the secret store module.
type Blockchain interface {
	// BlockEvents returns the secret store module events of the block.
	BlockEvents(block BlockID) ([]Event, error)
	// CurrentKeyServersSet returns the current key servers set. This should
	// be read at the best known (finalized) block, since sessions are started
	// by the key server selected using this set.
	CurrentKeyServersSet() ([]KeyServerID, error)

	// ServerKeyGenerationTasks returns the pending server key generation
	// tasks in the index range at the given block.
	ServerKeyGenerationTasks(block BlockID, r Range) ([]Task, error)
	// IsServerKeyGenerationResponseRequired returns true if the key server
	// still has to respond to the server key generation request.
	IsServerKeyGenerationResponseRequired(keyID ServerKeyID, keyServer KeyServerID) (bool, error)

	// ServerKeyRetrievalTasks returns the pending server key retrieval
	// tasks in the index range at the given block.
	ServerKeyRetrievalTasks(block BlockID, r Range) ([]Task, error)
	// IsServerKeyRetrievalResponseRequired returns true if the key server
	// still has to respond to the server key retrieval request.
	IsServerKeyRetrievalResponseRequired(keyID ServerKeyID, keyServer KeyServerID) (bool, error)

	// DocumentKeyStoreTasks returns the pending document key store
	// tasks in the index range at the given block.
	DocumentKeyStoreTasks(block BlockID, r Range) ([]Task, error)
	// IsDocumentKeyStoreResponseRequired returns true if the key server
	// still has to respond to the document key store request.
	IsDocumentKeyStoreResponseRequired(keyID ServerKeyID, keyServer KeyServerID) (bool, error)

	// DocumentKeyShadowRetrievalTasks returns the pending document key
	// shadow retrieval tasks in the index range at the given block.
	DocumentKeyShadowRetrievalTasks(block BlockID, r Range) ([]Task, error)
	// IsDocumentKeyShadowRetrievalResponseRequired returns true if the key
	// server still has to respond to the requester document key shadow
	// retrieval request.
	IsDocumentKeyShadowRetrievalResponseRequired(keyID ServerKeyID, requester Address,
		keyServer KeyServerID) (bool, error)
}

// TransactionPool accepts secret store module calls to be
// included on chain.
type TransactionPool interface {
	SubmitTransaction(call Call) (transactionHash fmt.Stringer, err error)
}

// TaskIterator is a forward only sequence of tasks.
type TaskIterator interface {
	// Next returns the next task, or false once the sequence is exhausted.
	Next() (task Task, ok bool)
}

// BlockTasks gives access to the tasks of a block.
type BlockTasks interface {
	ID() BlockID
	NewTasks() TaskIterator
	PendingTasks() TaskIterator
	CurrentKeyServersSet() []KeyServerID
}

// Publisher publishes the results of key server sessions.
type Publisher interface {
	PublishGeneratedServerKey(origin Address, keyID ServerKeyID, artifacts ServerKeyGenerationArtifacts)
	PublishServerKeyGenerationError(origin Address, keyID ServerKeyID)
	PublishRetrievedServerKey(origin Address, keyID ServerKeyID, artifacts ServerKeyRetrievalArtifacts)
	PublishServerKeyRetrievalError(origin Address, keyID ServerKeyID)
	PublishStoredDocumentKey(origin Address, keyID ServerKeyID)
	PublishDocumentKeyStoreError(origin Address, keyID ServerKeyID)
	PublishRetrievedDocumentKeyCommon(origin Address, keyID ServerKeyID, requester Requester,
		artifacts DocumentKeyCommonRetrievalArtifacts)
	PublishDocumentKeyCommonRetrievalError(origin Address, keyID ServerKeyID, requester Requester)
	PublishRetrievedDocumentKeyPersonal(origin Address, keyID ServerKeyID, requester Requester,
		artifacts DocumentKeyShadowRetrievalArtifacts)
	PublishDocumentKeyPersonalRetrievalError(origin Address, keyID ServerKeyID, requester Requester)
}

// Runtime schedules the tasks of the blocks it receives on the key server,
// and publishes the session results using the publisher.
type Runtime interface {
	Run(ctx context.Context, blocks <-chan BlockTasks, publisher Publisher) error
}

// Metrics records the bridge activity.
type Metrics interface {
	PendingTasksFetched(category string, tasks int)
	PendingTasksFetchFailed(category string)
	ResponseOutcome(response, outcome string)
}
