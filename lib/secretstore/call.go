// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

// Call is a secret store runtime module call, submitted
// by key servers to publish responses.
type Call interface {
	CallName() string
}

// ServerKeyGenerated publishes a generated server key.
type ServerKeyGenerated struct {
	KeyID ServerKeyID
	Key   Public
}

// CallName returns the module call name.
func (ServerKeyGenerated) CallName() string { return "server_key_generated" }

// ServerKeyGenerationError reports a failed server key generation.
type ServerKeyGenerationError struct {
	KeyID ServerKeyID
}

// CallName returns the module call name.
func (ServerKeyGenerationError) CallName() string { return "server_key_generation_error" }

// ServerKeyRetrieved publishes a retrieved server key.
type ServerKeyRetrieved struct {
	KeyID     ServerKeyID
	Key       Public
	Threshold uint8
}

// CallName returns the module call name.
func (ServerKeyRetrieved) CallName() string { return "server_key_retrieved" }

// ServerKeyRetrievalError reports a failed server key retrieval.
type ServerKeyRetrievalError struct {
	KeyID ServerKeyID
}

// CallName returns the module call name.
func (ServerKeyRetrievalError) CallName() string { return "server_key_retrieval_error" }

// DocumentKeyStored confirms a document key has been stored.
type DocumentKeyStored struct {
	KeyID ServerKeyID
}

// CallName returns the module call name.
func (DocumentKeyStored) CallName() string { return "document_key_stored" }

// DocumentKeyStoreError reports a failed document key store.
type DocumentKeyStoreError struct {
	KeyID ServerKeyID
}

// CallName returns the module call name.
func (DocumentKeyStoreError) CallName() string { return "document_key_store_error" }

// DocumentKeyCommonRetrieved publishes the common part of a document key shadow.
type DocumentKeyCommonRetrieved struct {
	KeyID       ServerKeyID
	Requester   Address
	CommonPoint Public
	Threshold   uint8
}

// CallName returns the module call name.
func (DocumentKeyCommonRetrieved) CallName() string { return "document_key_common_retrieved" }

// DocumentKeyPersonalRetrieved publishes the personal part of a document key
// shadow: the participants of the decryption session, the encrypted document
// key and the shadow made of the participants coefficients.
type DocumentKeyPersonalRetrieved struct {
	KeyID           ServerKeyID
	Requester       Address
	Participants    []Address
	DecryptedSecret Public
	Shadow          []byte
}

// CallName returns the module call name.
func (DocumentKeyPersonalRetrieved) CallName() string { return "document_key_personal_retrieved" }

// DocumentKeyShadowRetrievalError reports a failed document key shadow retrieval.
type DocumentKeyShadowRetrievalError struct {
	KeyID     ServerKeyID
	Requester Address
}

// CallName returns the module call name.
func (DocumentKeyShadowRetrievalError) CallName() string {
	return "document_key_shadow_retrieval_error"
}
