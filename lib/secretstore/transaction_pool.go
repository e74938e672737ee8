// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ChainSafe/gossamer-secretstore/internal/log"
)

var _ Publisher = (*ResponseSubmitter)(nil)

// ResponseSubmitter publishes key server session results on chain,
// submitting a response transaction only if the chain still expects
// a response from this key server.
type ResponseSubmitter struct {
	blockchain      Blockchain
	transactionPool TransactionPool
	keyServer       KeyServerID
	logger          log.LeveledLogger
	metrics         Metrics
}

// NewResponseSubmitter creates a response submitter for the key server.
func NewResponseSubmitter(blockchain Blockchain, transactionPool TransactionPool,
	keyServer KeyServerID, metrics Metrics) *ResponseSubmitter {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &ResponseSubmitter{
		blockchain:      blockchain,
		transactionPool: transactionPool,
		keyServer:       keyServer,
		logger:          logger,
		metrics:         metrics,
	}
}

// submitResponseTransaction submits the prepared response transaction if
// it is still required. Failures are logged and never returned.
func (s *ResponseSubmitter) submitResponseTransaction(kind string, keyID ServerKeyID,
	isResponseRequired func() (bool, error), prepareResponse func() (Call, error)) {
	response := fmt.Sprintf("%s(%s)", kind, keyID)

	required, err := isResponseRequired()
	if err != nil {
		s.logger.Errorf("Failed to check if response %s is required: %s", response, err)
		s.metrics.ResponseOutcome(kind, OutcomeCheckFailed)
		return
	}
	if !required {
		s.metrics.ResponseOutcome(kind, OutcomeNotRequired)
		return
	}

	call, err := prepareResponse()
	if err != nil {
		s.logger.Errorf("Failed to prepare response %s: %s", response, err)
		s.metrics.ResponseOutcome(kind, OutcomePrepareFailed)
		return
	}

	transactionHash, err := s.transactionPool.SubmitTransaction(call)
	if err != nil {
		s.logger.Errorf("Failed to submit response %s: %s", response, err)
		s.metrics.ResponseOutcome(kind, OutcomeSubmitFailed)
		return
	}

	s.logger.Tracef("Submitted response %s: %s", response, transactionHash)
	s.metrics.ResponseOutcome(kind, OutcomeSubmitted)
}

func (s *ResponseSubmitter) isServerKeyGenerationResponseRequired(keyID ServerKeyID) func() (bool, error) {
	return func() (bool, error) {
		return s.blockchain.IsServerKeyGenerationResponseRequired(keyID, s.keyServer)
	}
}

func (s *ResponseSubmitter) isServerKeyRetrievalResponseRequired(keyID ServerKeyID) func() (bool, error) {
	return func() (bool, error) {
		return s.blockchain.IsServerKeyRetrievalResponseRequired(keyID, s.keyServer)
	}
}

func (s *ResponseSubmitter) isDocumentKeyStoreResponseRequired(keyID ServerKeyID) func() (bool, error) {
	return func() (bool, error) {
		return s.blockchain.IsDocumentKeyStoreResponseRequired(keyID, s.keyServer)
	}
}

// submitDocumentKeyShadowRetrievalResponse is submitResponseTransaction for
// shadow retrieval responses, which are checked and published for the
// requester address.
func (s *ResponseSubmitter) submitDocumentKeyShadowRetrievalResponse(kind string, keyID ServerKeyID,
	requester Requester, prepareResponse func(requester Address) (Call, error)) {
	var requesterAddress Address
	s.submitResponseTransaction(kind, keyID,
		func() (bool, error) {
			address, err := requester.AddressFor(keyID)
			if err != nil {
				return false, err
			}
			requesterAddress = address
			return s.blockchain.IsDocumentKeyShadowRetrievalResponseRequired(keyID, address, s.keyServer)
		},
		func() (Call, error) {
			return prepareResponse(requesterAddress)
		},
	)
}

// PublishGeneratedServerKey publishes the generated server key.
func (s *ResponseSubmitter) PublishGeneratedServerKey(_ Address, keyID ServerKeyID,
	artifacts ServerKeyGenerationArtifacts) {
	s.submitResponseTransaction("ServerKeyGenerationSuccess", keyID,
		s.isServerKeyGenerationResponseRequired(keyID),
		func() (Call, error) {
			return ServerKeyGenerated{KeyID: keyID, Key: artifacts.Key}, nil
		},
	)
}

// PublishServerKeyGenerationError publishes the server key generation failure.
func (s *ResponseSubmitter) PublishServerKeyGenerationError(_ Address, keyID ServerKeyID) {
	s.submitResponseTransaction("ServerKeyGenerationFailure", keyID,
		s.isServerKeyGenerationResponseRequired(keyID),
		func() (Call, error) {
			return ServerKeyGenerationError{KeyID: keyID}, nil
		},
	)
}

// PublishRetrievedServerKey publishes the retrieved server key.
func (s *ResponseSubmitter) PublishRetrievedServerKey(_ Address, keyID ServerKeyID,
	artifacts ServerKeyRetrievalArtifacts) {
	s.submitResponseTransaction("ServerKeyRetrievalSuccess", keyID,
		s.isServerKeyRetrievalResponseRequired(keyID),
		func() (Call, error) {
			threshold, err := thresholdToUint8(artifacts.Threshold)
			if err != nil {
				return nil, err
			}
			return ServerKeyRetrieved{KeyID: keyID, Key: artifacts.Key, Threshold: threshold}, nil
		},
	)
}

// PublishServerKeyRetrievalError publishes the server key retrieval failure.
func (s *ResponseSubmitter) PublishServerKeyRetrievalError(_ Address, keyID ServerKeyID) {
	s.submitResponseTransaction("ServerKeyRetrievalFailure", keyID,
		s.isServerKeyRetrievalResponseRequired(keyID),
		func() (Call, error) {
			return ServerKeyRetrievalError{KeyID: keyID}, nil
		},
	)
}

// PublishStoredDocumentKey confirms the document key is stored.
func (s *ResponseSubmitter) PublishStoredDocumentKey(_ Address, keyID ServerKeyID) {
	s.submitResponseTransaction("DocumentKeyStoreSuccess", keyID,
		s.isDocumentKeyStoreResponseRequired(keyID),
		func() (Call, error) {
			return DocumentKeyStored{KeyID: keyID}, nil
		},
	)
}

// PublishDocumentKeyStoreError publishes the document key store failure.
func (s *ResponseSubmitter) PublishDocumentKeyStoreError(_ Address, keyID ServerKeyID) {
	s.submitResponseTransaction("DocumentKeyStoreFailure", keyID,
		s.isDocumentKeyStoreResponseRequired(keyID),
		func() (Call, error) {
			return DocumentKeyStoreError{KeyID: keyID}, nil
		},
	)
}

// PublishRetrievedDocumentKeyCommon publishes the common part of the
// document key shadow.
func (s *ResponseSubmitter) PublishRetrievedDocumentKeyCommon(_ Address, keyID ServerKeyID,
	requester Requester, artifacts DocumentKeyCommonRetrievalArtifacts) {
	s.submitDocumentKeyShadowRetrievalResponse("DocumentKeyCommonRetrievalSuccess", keyID, requester,
		func(requester Address) (Call, error) {
			threshold, err := thresholdToUint8(artifacts.Threshold)
			if err != nil {
				return nil, err
			}
			return DocumentKeyCommonRetrieved{
				KeyID:       keyID,
				Requester:   requester,
				CommonPoint: artifacts.CommonPoint,
				Threshold:   threshold,
			}, nil
		},
	)
}

// PublishDocumentKeyCommonRetrievalError publishes the document key
// shadow retrieval failure.
func (s *ResponseSubmitter) PublishDocumentKeyCommonRetrievalError(_ Address, keyID ServerKeyID,
	requester Requester) {
	s.submitDocumentKeyShadowRetrievalResponse("DocumentKeyCommonRetrievalFailure", keyID, requester,
		func(requester Address) (Call, error) {
			return DocumentKeyShadowRetrievalError{KeyID: keyID, Requester: requester}, nil
		},
	)
}

// PublishRetrievedDocumentKeyPersonal publishes the personal part of the
// document key shadow computed by this key server.
func (s *ResponseSubmitter) PublishRetrievedDocumentKeyPersonal(_ Address, keyID ServerKeyID,
	requester Requester, artifacts DocumentKeyShadowRetrievalArtifacts) {
	s.submitDocumentKeyShadowRetrievalResponse("DocumentKeyPersonalRetrievalSuccess", keyID, requester,
		func(requester Address) (Call, error) {
			if len(artifacts.ParticipantsCoefficients) == 0 {
				return nil, errNoParticipants
			}

			participants := make([]Address, 0, len(artifacts.ParticipantsCoefficients))
			for participant := range artifacts.ParticipantsCoefficients {
				participants = append(participants, participant)
			}
			sort.Slice(participants, func(i, j int) bool {
				return bytes.Compare(participants[i][:], participants[j][:]) < 0
			})

			shadow := make([]byte, 0, len(participants)*len(Secret{}))
			for _, participant := range participants {
				coefficient := artifacts.ParticipantsCoefficients[participant]
				shadow = append(shadow, coefficient[:]...)
			}

			return DocumentKeyPersonalRetrieved{
				KeyID:           keyID,
				Requester:       requester,
				Participants:    participants,
				DecryptedSecret: artifacts.EncryptedDocumentKey,
				Shadow:          shadow,
			}, nil
		},
	)
}

// PublishDocumentKeyPersonalRetrievalError publishes the document key
// shadow retrieval failure.
func (s *ResponseSubmitter) PublishDocumentKeyPersonalRetrievalError(_ Address, keyID ServerKeyID,
	requester Requester) {
	s.submitDocumentKeyShadowRetrievalResponse("DocumentKeyPersonalRetrievalFailure", keyID, requester,
		func(requester Address) (Call, error) {
			return DocumentKeyShadowRetrievalError{KeyID: keyID, Requester: requester}, nil
		},
	)
}

func thresholdToUint8(threshold uint) (uint8, error) {
	const maxThreshold = ^uint8(0)
	if threshold > uint(maxThreshold) {
		return 0, fmt.Errorf("%w: %d", ErrThresholdTooLarge, threshold)
	}
	return uint8(threshold), nil
}
