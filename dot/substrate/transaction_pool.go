// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"fmt"

	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ModuleName is the name of the secret store runtime module.
const ModuleName = "SecretStore"

var _ secretstore.TransactionPool = (*TransactionPool)(nil)

// TransactionPool signs secret store module calls with the key server
// account and submits them to the node transaction pool.
type TransactionPool struct {
	client      Client
	metadata    MetadataSource
	signer      signature.KeyringPair
	genesisHash common.Hash
}

// NewTransactionPool creates a transaction pool submitting transactions
// signed by the signer.
func NewTransactionPool(client Client, metadata MetadataSource, signer signature.KeyringPair) (
	*TransactionPool, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	if metadata == nil {
		return nil, ErrNilMetadataCache
	}

	genesisHash, err := blockHash(client, 0)
	if err != nil {
		return nil, err
	}

	return &TransactionPool{
		client:      client,
		metadata:    metadata,
		signer:      signer,
		genesisHash: genesisHash,
	}, nil
}

// SubmitTransaction signs and submits the call, returning the
// transaction hash.
func (p *TransactionPool) SubmitTransaction(call secretstore.Call) (fmt.Stringer, error) {
	args, err := callArgs(call)
	if err != nil {
		return nil, err
	}

	meta, version, err := p.metadata.Metadata(secretstore.BestBlock)
	if err != nil {
		return nil, err
	}

	runtimeCall, err := types.NewCall(meta, ModuleName+"."+call.CallName(), args...)
	if err != nil {
		return nil, fmt.Errorf("cannot create call %s: %w", call.CallName(), err)
	}

	var nonce uint64
	err = p.client.Call(&nonce, "system_accountNextIndex", p.signer.Address)
	if err != nil {
		return nil, fmt.Errorf("cannot get next index of account %s: %w", p.signer.Address, err)
	}

	extrinsic := types.NewExtrinsic(runtimeCall)
	genesisHash := types.NewHash(p.genesisHash.Bytes())
	err = extrinsic.Sign(p.signer, types.SignatureOptions{
		BlockHash:          genesisHash,
		Era:                types.ExtrinsicEra{IsImmortalEra: true},
		GenesisHash:        genesisHash,
		Nonce:              types.NewUCompactFromUInt(nonce),
		SpecVersion:        version.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: version.TransactionVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot sign call %s: %w", call.CallName(), err)
	}

	encoded, err := codec.EncodeToHex(extrinsic)
	if err != nil {
		return nil, fmt.Errorf("cannot encode extrinsic: %w", err)
	}

	var transactionHash string
	err = p.client.Call(&transactionHash, "author_submitExtrinsic", encoded)
	if err != nil {
		return nil, fmt.Errorf("cannot submit extrinsic: %w", err)
	}

	b, err := hexutil.Decode(transactionHash)
	if err != nil {
		return nil, fmt.Errorf("cannot decode transaction hash: %w", err)
	}
	return common.BytesToHash(b), nil
}

// callArgs returns the SCALE encodable arguments of the module call.
func callArgs(call secretstore.Call) ([]interface{}, error) {
	switch c := call.(type) {
	case secretstore.ServerKeyGenerated:
		return []interface{}{types.NewH256(c.KeyID[:]), types.NewH512(c.Key[:])}, nil
	case secretstore.ServerKeyGenerationError:
		return []interface{}{types.NewH256(c.KeyID[:])}, nil
	case secretstore.ServerKeyRetrieved:
		return []interface{}{types.NewH256(c.KeyID[:]), types.NewH512(c.Key[:]), types.NewU8(c.Threshold)}, nil
	case secretstore.ServerKeyRetrievalError:
		return []interface{}{types.NewH256(c.KeyID[:])}, nil
	case secretstore.DocumentKeyStored:
		return []interface{}{types.NewH256(c.KeyID[:])}, nil
	case secretstore.DocumentKeyStoreError:
		return []interface{}{types.NewH256(c.KeyID[:])}, nil
	case secretstore.DocumentKeyCommonRetrieved:
		return []interface{}{
			types.NewH256(c.KeyID[:]),
			types.NewH160(c.Requester[:]),
			types.NewH512(c.CommonPoint[:]),
			types.NewU8(c.Threshold),
		}, nil
	case secretstore.DocumentKeyPersonalRetrieved:
		participants := make([]types.H160, len(c.Participants))
		for i, participant := range c.Participants {
			participants[i] = types.H160(participant)
		}
		return []interface{}{
			types.NewH256(c.KeyID[:]),
			types.NewH160(c.Requester[:]),
			participants,
			types.NewH512(c.DecryptedSecret[:]),
			types.NewBytes(c.Shadow),
		}, nil
	case secretstore.DocumentKeyShadowRetrievalError:
		return []interface{}{types.NewH256(c.KeyID[:]), types.NewH160(c.Requester[:])}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrCallNotSupported, call)
	}
}
