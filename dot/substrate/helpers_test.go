// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

// returnResult returns a Client.Call implementation setting the
// call result to value.
func returnResult(value interface{}) func(result interface{}, method string, args ...interface{}) error {
	return func(result interface{}, _ string, _ ...interface{}) error {
		reflect.ValueOf(result).Elem().Set(reflect.ValueOf(value))
		return nil
	}
}

func encodeToHex(t *testing.T, value interface{}) string {
	t.Helper()
	encoded, err := codec.EncodeToHex(value)
	require.NoError(t, err)
	return encoded
}

// Module indexes of the events of the test metadata.
const (
	systemEventsIndex      = 0
	oracleEventsIndex      = 1
	secretStoreEventsIndex = 2
)

var secretStoreEventNames = []string{
	"KeyServerAdded",
	"KeyServerRemoved",
	"KeyServerUpdated",
	"MigrationStarted",
	"MigrationCompleted",
	"ServerKeyGenerationRequested",
	"ServerKeyGenerated",
	"ServerKeyGenerationError",
	"ServerKeyRetrievalRequested",
	"ServerKeyRetrieved",
	"ServerKeyRetrievalError",
	"DocumentKeyStoreRequested",
	"DocumentKeyStored",
	"DocumentKeyStoreError",
	"DocumentKeyShadowRetrievalRequested",
	"DocumentKeyCommonRetrieved",
	"DocumentKeyPersonalRetrieved",
	"DocumentKeyShadowRetrievalError",
}

var secretStoreCallNames = []string{
	"server_key_generated",
	"server_key_generation_error",
	"server_key_retrieved",
	"server_key_retrieval_error",
	"document_key_stored",
	"document_key_store_error",
	"document_key_common_retrieved",
	"document_key_personal_retrieved",
	"document_key_shadow_retrieval_error",
}

// newTestMetadata returns v10 metadata of a runtime made of the system
// module, an oracle module unknown to the bridge and the secret store module.
func newTestMetadata() *types.Metadata {
	events := make([]types.EventMetadataV4, len(secretStoreEventNames))
	for i, name := range secretStoreEventNames {
		events[i] = types.EventMetadataV4{Name: types.Text(name)}
	}

	calls := make([]types.FunctionMetadataV4, len(secretStoreCallNames))
	for i, name := range secretStoreCallNames {
		calls[i] = types.FunctionMetadataV4{Name: types.Text(name)}
	}

	return &types.Metadata{
		MagicNumber: types.MagicNumber,
		Version:     10,
		AsMetadataV10: types.MetadataV10{Modules: []types.ModuleMetadataV10{
			{
				Name:       "System",
				HasStorage: true,
				Storage: types.StorageMetadataV10{
					Prefix: "System",
					Items: []types.StorageFunctionMetadataV10{{
						Name: "Events",
						Type: types.StorageFunctionTypeV10{IsType: true, AsType: "Vec<EventRecord>"},
					}},
				},
				HasEvents: true,
				Events:    []types.EventMetadataV4{{Name: "CodeUpdated"}},
			},
			{
				Name:      "Oracle",
				HasEvents: true,
				Events:    []types.EventMetadataV4{{Name: "ValueSet"}},
			},
			{
				Name:      "SecretStore",
				HasCalls:  true,
				Calls:     calls,
				HasEvents: true,
				Events:    events,
			},
		}},
	}
}

// secretStoreEventID returns the id of the secret store event in the test metadata.
func secretStoreEventID(t *testing.T, name string) types.EventID {
	t.Helper()
	for i, eventName := range secretStoreEventNames {
		if eventName == name {
			return types.EventID{secretStoreEventsIndex, byte(i)}
		}
	}
	t.Fatalf("unknown secret store event %s", name)
	return types.EventID{}
}

// secretStoreCallIndex returns the index of the secret store call in the test metadata.
func secretStoreCallIndex(t *testing.T, name string) types.CallIndex {
	t.Helper()
	for i, callName := range secretStoreCallNames {
		if callName == name {
			return types.CallIndex{SectionIndex: 0, MethodIndex: uint8(i)}
		}
	}
	t.Fatalf("unknown secret store call %s", name)
	return types.CallIndex{}
}

func inExtrinsic(index uint32) types.Phase {
	return types.Phase{IsApplyExtrinsic: true, AsApplyExtrinsic: index}
}

// encodeEventRecords SCALE encodes the event records, each record being
// its phase, event id and fields, without the topics.
func encodeEventRecords(t *testing.T, records ...[]interface{}) []byte {
	t.Helper()

	encoded, err := codec.Encode(types.NewUCompactFromUInt(uint64(len(records))))
	require.NoError(t, err)

	for _, record := range records {
		record = append(record, []types.Hash{})
		for _, value := range record {
			b, err := codec.Encode(value)
			require.NoError(t, err)
			encoded = append(encoded, b...)
		}
	}
	return encoded
}
