// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

// ServerKeyGenerationArtifacts is the result of a server key generation.
type ServerKeyGenerationArtifacts struct {
	Key Public `json:"key"`
}

// ServerKeyRetrievalArtifacts is the result of a server key retrieval.
type ServerKeyRetrievalArtifacts struct {
	Key       Public `json:"key"`
	Threshold uint   `json:"threshold"`
}

// DocumentKeyCommonRetrievalArtifacts is the part of a document key
// shadow retrieval result which is common to all key servers.
type DocumentKeyCommonRetrievalArtifacts struct {
	CommonPoint Public `json:"common_point"`
	Threshold   uint   `json:"threshold"`
}

// DocumentKeyShadowRetrievalArtifacts is the full result of a document
// key shadow retrieval as computed by this key server.
type DocumentKeyShadowRetrievalArtifacts struct {
	CommonPoint              Public             `json:"common_point"`
	Threshold                uint               `json:"threshold"`
	EncryptedDocumentKey     Public             `json:"encrypted_document_key"`
	ParticipantsCoefficients map[Address]Secret `json:"participants_coefficients"`
}
