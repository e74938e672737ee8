// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package queue

import (
	"fmt"

	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
)

// Result is the outcome of a task as reported by the key server.
// Only the artifacts of the task kind are set, and only on success.
type Result struct {
	Kind      secretstore.TaskKind    `json:"kind"`
	Origin    secretstore.Address     `json:"origin"`
	KeyID     secretstore.ServerKeyID `json:"key_id"`
	Requester *secretstore.Requester  `json:"requester,omitempty"`
	Success   bool                    `json:"success"`
	// Common is set for document key shadow retrieval results
	// carrying the part common to all key servers.
	Common bool `json:"common,omitempty"`

	ServerKeyGeneration        *secretstore.ServerKeyGenerationArtifacts        `json:"server_key_generation,omitempty"`
	ServerKeyRetrieval         *secretstore.ServerKeyRetrievalArtifacts         `json:"server_key_retrieval,omitempty"`
	DocumentKeyCommonRetrieval *secretstore.DocumentKeyCommonRetrievalArtifacts `json:"document_key_common_retrieval,omitempty"`
	DocumentKeyShadowRetrieval *secretstore.DocumentKeyShadowRetrievalArtifacts `json:"document_key_shadow_retrieval,omitempty"`
}

func (r Result) String() string {
	return fmt.Sprintf("%s(%s, success=%t)", r.Kind, r.KeyID, r.Success)
}

// Validate checks the result carries what its kind needs to be published.
func (r Result) Validate() error {
	if _, ok := r.Kind.Category(); !ok {
		return fmt.Errorf("%w: unknown task kind %q", ErrResultMalformed, r.Kind)
	}

	if r.Kind == secretstore.RetrieveShadowDocumentKey && r.Requester == nil {
		return fmt.Errorf("%w: %s has no requester", ErrResultMalformed, r)
	}

	if !r.Success {
		return nil
	}

	var missing bool
	switch r.Kind {
	case secretstore.GenerateServerKey:
		missing = r.ServerKeyGeneration == nil
	case secretstore.RetrieveServerKey:
		missing = r.ServerKeyRetrieval == nil
	case secretstore.RetrieveShadowDocumentKey:
		if r.Common {
			missing = r.DocumentKeyCommonRetrieval == nil
		} else {
			missing = r.DocumentKeyShadowRetrieval == nil
		}
	}

	if missing {
		return fmt.Errorf("%w: %s has no artifacts", ErrResultMalformed, r)
	}
	return nil
}
