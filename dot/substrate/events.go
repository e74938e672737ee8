// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"
)

// EventKeyServerAdded is emitted when a key server is added to the new key servers set.
type EventKeyServerAdded struct {
	Phase     types.Phase
	KeyServer types.H160
	Topics    []types.Hash
}

// EventKeyServerRemoved is emitted when a key server is removed from the new key servers set.
type EventKeyServerRemoved struct {
	Phase     types.Phase
	KeyServer types.H160
	Topics    []types.Hash
}

// EventKeyServerUpdated is emitted when the address of a key server is updated.
type EventKeyServerUpdated struct {
	Phase     types.Phase
	KeyServer types.H160
	Topics    []types.Hash
}

// EventMigrationStarted is emitted when the key servers set migration starts.
type EventMigrationStarted struct {
	Phase  types.Phase
	Topics []types.Hash
}

// EventMigrationCompleted is emitted when the key servers set migration completes.
type EventMigrationCompleted struct {
	Phase  types.Phase
	Topics []types.Hash
}

// EventServerKeyGenerationRequested is emitted when a server key generation is requested.
type EventServerKeyGenerationRequested struct {
	Phase     types.Phase
	KeyID     types.H256
	Requester types.H160
	Threshold types.U8
	Topics    []types.Hash
}

// EventServerKeyGenerated is emitted when a server key is generated.
type EventServerKeyGenerated struct {
	Phase  types.Phase
	KeyID  types.H256
	Key    types.H512
	Topics []types.Hash
}

// EventServerKeyGenerationError is emitted when a server key generation fails.
type EventServerKeyGenerationError struct {
	Phase  types.Phase
	KeyID  types.H256
	Topics []types.Hash
}

// EventServerKeyRetrievalRequested is emitted when a server key retrieval is requested.
type EventServerKeyRetrievalRequested struct {
	Phase  types.Phase
	KeyID  types.H256
	Topics []types.Hash
}

// EventServerKeyRetrieved is emitted when a server key is retrieved.
type EventServerKeyRetrieved struct {
	Phase     types.Phase
	KeyID     types.H256
	Key       types.H512
	Threshold types.U8
	Topics    []types.Hash
}

// EventServerKeyRetrievalError is emitted when a server key retrieval fails.
type EventServerKeyRetrievalError struct {
	Phase  types.Phase
	KeyID  types.H256
	Topics []types.Hash
}

// EventDocumentKeyStoreRequested is emitted when a document key store is requested.
type EventDocumentKeyStoreRequested struct {
	Phase          types.Phase
	KeyID          types.H256
	Author         types.H160
	CommonPoint    types.H512
	EncryptedPoint types.H512
	Topics         []types.Hash
}

// EventDocumentKeyStored is emitted when a document key is stored.
type EventDocumentKeyStored struct {
	Phase  types.Phase
	KeyID  types.H256
	Topics []types.Hash
}

// EventDocumentKeyStoreError is emitted when a document key store fails.
type EventDocumentKeyStoreError struct {
	Phase  types.Phase
	KeyID  types.H256
	Topics []types.Hash
}

// EventDocumentKeyShadowRetrievalRequested is emitted when a document key
// shadow retrieval is requested.
type EventDocumentKeyShadowRetrievalRequested struct {
	Phase     types.Phase
	KeyID     types.H256
	Requester types.H160
	Topics    []types.Hash
}

// EventDocumentKeyCommonRetrieved is emitted when the common part of a
// document key shadow is retrieved.
type EventDocumentKeyCommonRetrieved struct {
	Phase       types.Phase
	KeyID       types.H256
	Requester   types.H160
	CommonPoint types.H512
	Threshold   types.U8
	Topics      []types.Hash
}

// EventDocumentKeyPersonalRetrieved is emitted when the personal part of a
// document key shadow is retrieved.
type EventDocumentKeyPersonalRetrieved struct {
	Phase           types.Phase
	KeyID           types.H256
	Requester       types.H160
	Participants    []types.H160
	DecryptedSecret types.H512
	Shadow          types.Bytes
	Topics          []types.Hash
}

// EventDocumentKeyShadowRetrievalError is emitted when a document key
// shadow retrieval fails.
type EventDocumentKeyShadowRetrievalError struct {
	Phase     types.Phase
	KeyID     types.H256
	Requester types.H160
	Topics    []types.Hash
}

// EventRecords lists the event types known to the bridge: the events of
// the common substrate modules and all the secret store module events.
// Each field is named after the module and the event.
type EventRecords struct {
	types.EventRecords

	SecretStore_KeyServerAdded                      []EventKeyServerAdded
	SecretStore_KeyServerRemoved                    []EventKeyServerRemoved
	SecretStore_KeyServerUpdated                    []EventKeyServerUpdated
	SecretStore_MigrationStarted                    []EventMigrationStarted
	SecretStore_MigrationCompleted                  []EventMigrationCompleted
	SecretStore_ServerKeyGenerationRequested        []EventServerKeyGenerationRequested
	SecretStore_ServerKeyGenerated                  []EventServerKeyGenerated
	SecretStore_ServerKeyGenerationError            []EventServerKeyGenerationError
	SecretStore_ServerKeyRetrievalRequested         []EventServerKeyRetrievalRequested
	SecretStore_ServerKeyRetrieved                  []EventServerKeyRetrieved
	SecretStore_ServerKeyRetrievalError             []EventServerKeyRetrievalError
	SecretStore_DocumentKeyStoreRequested           []EventDocumentKeyStoreRequested
	SecretStore_DocumentKeyStored                   []EventDocumentKeyStored
	SecretStore_DocumentKeyStoreError               []EventDocumentKeyStoreError
	SecretStore_DocumentKeyShadowRetrievalRequested []EventDocumentKeyShadowRetrievalRequested
	SecretStore_DocumentKeyCommonRetrieved          []EventDocumentKeyCommonRetrieved
	SecretStore_DocumentKeyPersonalRetrieved        []EventDocumentKeyPersonalRetrieved
	SecretStore_DocumentKeyShadowRetrievalError     []EventDocumentKeyShadowRetrievalError
}

var eventRecordsType = reflect.TypeOf(EventRecords{})

// decodeEvents decodes the raw event records of a block and returns the
// secret store module events, in the order they were emitted.
// Event records carry no length, so decoding stops at the first record
// whose type is not listed in EventRecords. The events decoded until then
// are returned along with the error.
func decodeEvents(meta *types.Metadata, raw []byte) (events []secretstore.Event, err error) {
	decoder := scale.NewDecoder(bytes.NewReader(raw))

	count, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, fmt.Errorf("cannot decode number of events: %w", err)
	}

	for i := uint64(0); i < count.Uint64(); i++ {
		var (
			phase                 types.Phase
			id                    types.EventID
			moduleName, eventName types.Text
		)
		err = decoder.Decode(&phase)
		if err != nil {
			return events, fmt.Errorf("cannot decode phase of event #%d: %w", i, err)
		}

		err = decoder.Decode(&id)
		if err != nil {
			return events, fmt.Errorf("cannot decode id of event #%d: %w", i, err)
		}

		moduleName, eventName, err = meta.FindEventNamesForEventID(id)
		if err != nil {
			return events, fmt.Errorf("cannot find event #%d with id %v: %w", i, id, err)
		}

		field, ok := eventRecordsType.FieldByName(fmt.Sprintf("%s_%s", moduleName, eventName))
		if !ok {
			return events, fmt.Errorf("%w: %s.%s at event #%d", errUnknownEvent, moduleName, eventName, i)
		}

		// the first field is the phase, the last one the topics.
		record := reflect.New(field.Type.Elem()).Elem()
		record.Field(0).Set(reflect.ValueOf(phase))
		for j := 1; j < record.NumField(); j++ {
			err = decoder.Decode(record.Field(j).Addr().Interface())
			if err != nil {
				return events, fmt.Errorf("cannot decode event #%d %s.%s: %w", i, moduleName, eventName, err)
			}
		}

		if string(moduleName) != ModuleName {
			continue
		}

		events = append(events, secretStoreEvent(string(eventName), record.Interface()))
	}

	return events, nil
}

// secretStoreEvent converts a decoded secret store module event record.
// Events not requesting work from key servers are returned as unsupported events.
func secretStoreEvent(name string, record interface{}) secretstore.Event {
	switch e := record.(type) {
	case EventServerKeyGenerationRequested:
		return secretstore.ServerKeyGenerationRequested{
			KeyID:     common.Hash(e.KeyID),
			Requester: common.Address(e.Requester),
			Threshold: uint8(e.Threshold),
		}
	case EventServerKeyRetrievalRequested:
		return secretstore.ServerKeyRetrievalRequested{
			KeyID: common.Hash(e.KeyID),
		}
	case EventDocumentKeyStoreRequested:
		return secretstore.DocumentKeyStoreRequested{
			KeyID:          common.Hash(e.KeyID),
			Author:         common.Address(e.Author),
			CommonPoint:    secretstore.Public(e.CommonPoint),
			EncryptedPoint: secretstore.Public(e.EncryptedPoint),
		}
	case EventDocumentKeyShadowRetrievalRequested:
		return secretstore.DocumentKeyShadowRetrievalRequested{
			KeyID:     common.Hash(e.KeyID),
			Requester: common.Address(e.Requester),
		}
	default:
		return secretstore.UnsupportedEvent{Name: name}
	}
}
