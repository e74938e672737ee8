// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import "fmt"

// TaskKind is the kind of key server operation requested by a task.
type TaskKind string

const (
	// GenerateServerKey requests the generation of a new server key.
	GenerateServerKey TaskKind = "generate_server_key"
	// RetrieveServerKey requests the public part of an existing server key.
	RetrieveServerKey TaskKind = "retrieve_server_key"
	// StoreDocumentKey requests storing an externally generated document key.
	StoreDocumentKey TaskKind = "store_document_key"
	// RetrieveShadowDocumentKey requests the shadow of a document key.
	RetrieveShadowDocumentKey TaskKind = "retrieve_shadow_document_key"
)

// Category returns the backlog category of the task kind.
func (k TaskKind) Category() (category TaskCategory, ok bool) {
	switch k {
	case GenerateServerKey:
		return ServerKeyGeneration, true
	case RetrieveServerKey:
		return ServerKeyRetrieval, true
	case StoreDocumentKey:
		return DocumentKeyStore, true
	case RetrieveShadowDocumentKey:
		return DocumentKeyShadowRetrieval, true
	default:
		return 0, false
	}
}

// ServiceTask is a key server operation with its parameters.
// Only the parameters relevant for the kind are set.
type ServiceTask struct {
	Kind           TaskKind    `json:"kind"`
	KeyID          ServerKeyID `json:"key_id"`
	Requester      Requester   `json:"requester"`
	Threshold      uint        `json:"threshold,omitempty"`
	CommonPoint    Public      `json:"common_point"`
	EncryptedPoint Public      `json:"encrypted_point"`
}

// Task is a service task together with the address of the
// secret store module it originates from.
type Task struct {
	Origin Address `json:"origin"`
	ServiceTask
}

func (t Task) String() string {
	switch t.Kind {
	case GenerateServerKey:
		return fmt.Sprintf("GenerateServerKey(%s, %s, %d)", t.KeyID, t.Requester, t.Threshold)
	case RetrieveServerKey:
		return fmt.Sprintf("RetrieveServerKey(%s)", t.KeyID)
	case StoreDocumentKey:
		return fmt.Sprintf("StoreDocumentKey(%s, %s)", t.KeyID, t.Requester)
	case RetrieveShadowDocumentKey:
		return fmt.Sprintf("RetrieveShadowDocumentKey(%s, %s)", t.KeyID, t.Requester)
	default:
		return fmt.Sprintf("UnknownTask(%s)", t.KeyID)
	}
}

// NewGenerateServerKeyTask returns a server key generation task.
func NewGenerateServerKeyTask(origin Address, keyID ServerKeyID, requester Requester, threshold uint) Task {
	return Task{
		Origin: origin,
		ServiceTask: ServiceTask{
			Kind:      GenerateServerKey,
			KeyID:     keyID,
			Requester: requester,
			Threshold: threshold,
		},
	}
}

// NewRetrieveServerKeyTask returns a server key retrieval task.
func NewRetrieveServerKeyTask(origin Address, keyID ServerKeyID) Task {
	return Task{
		Origin: origin,
		ServiceTask: ServiceTask{
			Kind:  RetrieveServerKey,
			KeyID: keyID,
		},
	}
}

// NewStoreDocumentKeyTask returns a document key store task.
func NewStoreDocumentKeyTask(origin Address, keyID ServerKeyID, author Requester,
	commonPoint, encryptedPoint Public) Task {
	return Task{
		Origin: origin,
		ServiceTask: ServiceTask{
			Kind:           StoreDocumentKey,
			KeyID:          keyID,
			Requester:      author,
			CommonPoint:    commonPoint,
			EncryptedPoint: encryptedPoint,
		},
	}
}

// NewRetrieveShadowDocumentKeyTask returns a document key shadow retrieval task.
func NewRetrieveShadowDocumentKeyTask(origin Address, keyID ServerKeyID, requester Requester) Task {
	return Task{
		Origin: origin,
		ServiceTask: ServiceTask{
			Kind:      RetrieveShadowDocumentKey,
			KeyID:     keyID,
			Requester: requester,
		},
	}
}

// TaskCategory is one of the backlog categories of the secret store module.
type TaskCategory uint8

const (
	// ServerKeyGeneration is the server key generation requests category.
	ServerKeyGeneration TaskCategory = iota
	// ServerKeyRetrieval is the server key retrieval requests category.
	ServerKeyRetrieval
	// DocumentKeyStore is the document key store requests category.
	DocumentKeyStore
	// DocumentKeyShadowRetrieval is the document key shadow retrieval requests category.
	DocumentKeyShadowRetrieval
)

// TaskCategories lists all categories in the order their
// backlogs are scanned.
var TaskCategories = [...]TaskCategory{
	ServerKeyGeneration,
	ServerKeyRetrieval,
	DocumentKeyStore,
	DocumentKeyShadowRetrieval,
}

func (c TaskCategory) String() string {
	switch c {
	case ServerKeyGeneration:
		return "server_key_generation"
	case ServerKeyRetrieval:
		return "server_key_retrieval"
	case DocumentKeyStore:
		return "document_key_store"
	case DocumentKeyShadowRetrieval:
		return "document_key_shadow_retrieval"
	default:
		return "unknown"
	}
}
