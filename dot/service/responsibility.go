// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package service

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
)

var keySpaceSize = new(big.Int).Lsh(big.NewInt(1), 256)

// responsibility is the slice of the server key id space
// a key server is responsible for.
type responsibility struct {
	index int
	share *big.Int
	size  int
}

// newResponsibility splits the key id space evenly over the sorted key
// servers set, the last key server taking the remainder. It returns false
// if self is not part of the set.
func newResponsibility(self secretstore.KeyServerID, keyServers []secretstore.KeyServerID) (
	r responsibility, ok bool) {
	sorted := make([]secretstore.KeyServerID, len(keyServers))
	copy(sorted, keyServers)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	// duplicates would leave holes in the key space
	unique := make([]secretstore.KeyServerID, 0, len(sorted))
	for _, keyServer := range sorted {
		if len(unique) > 0 && keyServer == unique[len(unique)-1] {
			continue
		}
		unique = append(unique, keyServer)
	}

	for i, keyServer := range unique {
		if keyServer == self {
			return responsibility{
				index: i,
				share: new(big.Int).Div(keySpaceSize, big.NewInt(int64(len(unique)))),
				size:  len(unique),
			}, true
		}
	}
	return r, false
}

// owns returns true if the key id falls in the slice of the key server.
func (r responsibility) owns(keyID secretstore.ServerKeyID) bool {
	index := new(big.Int).Div(new(big.Int).SetBytes(keyID[:]), r.share)
	if !index.IsInt64() || index.Int64() >= int64(r.size) {
		return r.index == r.size-1
	}
	return index.Int64() == int64(r.index)
}
