// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

// Event is an event emitted by the secret store runtime module.
type Event interface {
	EventName() string
}

// ServerKeyGenerationRequested is emitted when a new server key is requested.
type ServerKeyGenerationRequested struct {
	KeyID     ServerKeyID
	Requester Address
	Threshold uint8
}

// EventName returns the module event name.
func (ServerKeyGenerationRequested) EventName() string { return "ServerKeyGenerationRequested" }

// ServerKeyRetrievalRequested is emitted when an existing server key is requested.
type ServerKeyRetrievalRequested struct {
	KeyID ServerKeyID
}

// EventName returns the module event name.
func (ServerKeyRetrievalRequested) EventName() string { return "ServerKeyRetrievalRequested" }

// DocumentKeyStoreRequested is emitted when a document key is submitted for storage.
type DocumentKeyStoreRequested struct {
	KeyID          ServerKeyID
	Author         Address
	CommonPoint    Public
	EncryptedPoint Public
}

// EventName returns the module event name.
func (DocumentKeyStoreRequested) EventName() string { return "DocumentKeyStoreRequested" }

// DocumentKeyShadowRetrievalRequested is emitted when the shadow of
// a document key is requested.
type DocumentKeyShadowRetrievalRequested struct {
	KeyID     ServerKeyID
	Requester Address
}

// EventName returns the module event name.
func (DocumentKeyShadowRetrievalRequested) EventName() string {
	return "DocumentKeyShadowRetrievalRequested"
}

// UnsupportedEvent is any other secret store module event, such as
// responses published by key servers.
type UnsupportedEvent struct {
	Name string
}

// EventName returns the module event name.
func (e UnsupportedEvent) EventName() string { return e.Name }

// eventIntoTask converts a module event into a task. Events which do not
// request work from key servers are discarded and false is returned.
func eventIntoTask(event Event) (task Task, ok bool) {
	// only one secret store module per runtime is supported, so every
	// task has the same zero origin.
	var origin Address

	switch e := event.(type) {
	case ServerKeyGenerationRequested:
		return NewGenerateServerKeyTask(origin, e.KeyID, AddressRequester(e.Requester), uint(e.Threshold)), true
	case ServerKeyRetrievalRequested:
		return NewRetrieveServerKeyTask(origin, e.KeyID), true
	case DocumentKeyStoreRequested:
		return NewStoreDocumentKeyTask(origin, e.KeyID, AddressRequester(e.Author),
			e.CommonPoint, e.EncryptedPoint), true
	case DocumentKeyShadowRetrievalRequested:
		return NewRetrieveShadowDocumentKeyTask(origin, e.KeyID, AddressRequester(e.Requester)), true
	default:
		return task, false
	}
}
