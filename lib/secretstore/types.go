// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secretstore

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ServerKeyID is the identifier of a server key.
type ServerKeyID = common.Hash

// Address is an account address.
type Address = common.Address

// KeyServerID is the identity of a key server, which is
// the address of its secp256k1 key.
type KeyServerID = common.Address

// Secret is a secp256k1 secret scalar.
type Secret = common.Hash

// PublicLength is the length of an uncompressed secp256k1 public key,
// without the 0x04 prefix.
const PublicLength = 64

// Public is an uncompressed secp256k1 public key, without the 0x04 prefix.
type Public [PublicLength]byte

// BytesToPublic returns the public key from the given bytes.
// The last 64 bytes are used if the slice is longer.
func BytesToPublic(b []byte) (p Public) {
	if len(b) > PublicLength {
		b = b[len(b)-PublicLength:]
	}
	copy(p[PublicLength-len(b):], b)
	return p
}

// Hex returns the 0x prefixed hex encoding of the public key.
func (p Public) Hex() string {
	return hexutil.Encode(p[:])
}

func (p Public) String() string {
	return p.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (p Public) MarshalText() ([]byte, error) {
	return []byte(p.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Public) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Public", input, p[:])
}

// RequesterKind is the kind of identification given by a requester.
type RequesterKind string

const (
	// RequesterNone is used when the request has no requester.
	RequesterNone RequesterKind = ""
	// RequesterSignature is a signature of the server key id.
	RequesterSignature RequesterKind = "signature"
	// RequesterPublic is the public key of the requester.
	RequesterPublic RequesterKind = "public"
	// RequesterAddress is the address of the requester.
	RequesterAddress RequesterKind = "address"
)

// Requester identifies the origin of a key server request.
type Requester struct {
	Kind      RequesterKind `json:"kind"`
	Signature hexutil.Bytes `json:"signature,omitempty"`
	Public    Public        `json:"public"`
	Address   Address       `json:"address"`
}

// SignatureRequester returns a requester identified by the signature
// of the server key id.
func SignatureRequester(signature []byte) Requester {
	return Requester{Kind: RequesterSignature, Signature: signature}
}

// PublicRequester returns a requester identified by its public key.
func PublicRequester(public Public) Requester {
	return Requester{Kind: RequesterPublic, Public: public}
}

// AddressRequester returns a requester identified by its address.
func AddressRequester(address Address) Requester {
	return Requester{Kind: RequesterAddress, Address: address}
}

// AddressFor returns the address of the requester. The server key id is
// needed to recover the requester public key from its signature.
func (r Requester) AddressFor(keyID ServerKeyID) (address Address, err error) {
	switch r.Kind {
	case RequesterAddress:
		return r.Address, nil
	case RequesterPublic:
		return common.BytesToAddress(crypto.Keccak256(r.Public[:])[12:]), nil
	case RequesterSignature:
		public, err := crypto.SigToPub(keyID.Bytes(), r.Signature)
		if err != nil {
			return address, fmt.Errorf("%w: %s", ErrRequesterRecovery, err)
		}
		return crypto.PubkeyToAddress(*public), nil
	default:
		return address, fmt.Errorf("%w: %q", ErrRequesterKindUnknown, r.Kind)
	}
}

func (r Requester) String() string {
	switch r.Kind {
	case RequesterSignature:
		return "Signature(" + r.Signature.String() + ")"
	case RequesterPublic:
		return "Public(" + r.Public.Hex() + ")"
	case RequesterAddress:
		return "Address(" + r.Address.Hex() + ")"
	default:
		return "None"
	}
}

// BlockID references a block, either by its hash or as the best known block.
type BlockID struct {
	hash common.Hash
	best bool
}

// BestBlock references the best known block.
var BestBlock = BlockID{best: true}

// BlockHash references the block with the given hash.
func BlockHash(hash common.Hash) BlockID {
	return BlockID{hash: hash}
}

// Hash returns the block hash and true, or false for the best block.
func (b BlockID) Hash() (hash common.Hash, ok bool) {
	return b.hash, !b.best
}

func (b BlockID) String() string {
	if b.best {
		return "best"
	}
	return b.hash.Hex()
}

// Range is the half open index range [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of indexes in the range.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty returns true if the range contains no index.
func (r Range) Empty() bool {
	return r.Len() == 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
