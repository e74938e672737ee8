// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"fmt"

	"github.com/ChainSafe/gossamer-secretstore/lib/secretstore"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/dgraph-io/ristretto"
)

// DefaultMetadataCacheConfig is the cache configuration for the metadata
// of a few runtime versions.
var DefaultMetadataCacheConfig = ristretto.Config{
	NumCounters: 1000,
	MaxCost:     100,
	BufferItems: 64,
}

// MetadataCache caches the runtime metadata by runtime spec version,
// so it is only fetched again on runtime upgrades.
type MetadataCache struct {
	client Client
	cache  *ristretto.Cache
}

// NewMetadataCache creates a metadata cache fetching metadata using the client.
func NewMetadataCache(client Client, config ristretto.Config) (*MetadataCache, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	cache, err := ristretto.NewCache(&config)
	if err != nil {
		return nil, fmt.Errorf("cannot create metadata cache: %w", err)
	}

	return &MetadataCache{
		client: client,
		cache:  cache,
	}, nil
}

// Metadata returns the runtime metadata at the block
// together with the runtime version.
func (m *MetadataCache) Metadata(block secretstore.BlockID) (
	meta *types.Metadata, version types.RuntimeVersion, err error) {
	version, err = runtimeVersion(m.client, block)
	if err != nil {
		return nil, version, err
	}

	key := uint64(version.SpecVersion)
	if cached, ok := m.cache.Get(key); ok {
		return cached.(*types.Metadata), version, nil
	}

	var encoded string
	err = m.client.Call(&encoded, "state_getMetadata", withBlock(block)...)
	if err != nil {
		return nil, version, fmt.Errorf("cannot get metadata at block %s: %w", block, err)
	}
	if encoded == "" {
		return nil, version, fmt.Errorf("%w: at block %s", errEmptyMetadata, block)
	}

	meta = new(types.Metadata)
	err = codec.DecodeFromHex(encoded, meta)
	if err != nil {
		return nil, version, fmt.Errorf("cannot decode metadata at block %s: %w", block, err)
	}

	logger.Debugf("Fetched metadata of runtime %s version %d", version.SpecName, version.SpecVersion)
	m.cache.Set(key, meta, 1)
	return meta, version, nil
}
