// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesisdata

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	"github.com/ChainSafe/tanssi-tools/lib/chainspec"
	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "genesisdata"))

var (
	ErrMissingProperty = errors.New("chain spec property is missing")
	ErrInvalidHex      = errors.New("genesis storage is not valid hex")
	ErrInvalidUTF8     = errors.New("genesis data field is not valid UTF-8")
	ErrNoRawGenesis    = errors.New("chain spec has no raw genesis storage")
)

// FromChainSpec converts a raw chain spec to the genesis data
// registered on chain. The storage items are sorted by key then value.
// Boot nodes are not part of the genesis data and are ignored.
func FromChainSpec(spec *chainspec.ChainSpec) (gd GenesisData, err error) {
	err = chainspec.ValidateProperties(spec.Properties)
	if err != nil {
		return gd, fmt.Errorf("%w: %s", ErrMissingProperty, err)
	}

	if spec.Genesis.Raw.Top == nil {
		return gd, fmt.Errorf("%w: chain spec %s must be built with --raw", ErrNoRawGenesis, spec.ID)
	}

	storage, err := storageFromTop(spec.Genesis.Raw.Top)
	if err != nil {
		return gd, err
	}

	forkID := types.NewOptionBytesEmpty()
	if spec.ForkID != nil {
		forkID = types.NewOptionBytes([]byte(*spec.ForkID))
	}

	isEthereum := false
	if spec.Properties.IsEthereum != nil {
		isEthereum = *spec.Properties.IsEthereum
	} else {
		logger.Debugf("isEthereum is not set in chain spec %s, defaulting to false", spec.ID)
	}

	return GenesisData{
		Storage:    storage,
		Name:       []byte(spec.Name),
		ID:         []byte(spec.ID),
		ForkID:     forkID,
		Extensions: []byte{},
		Properties: Properties{
			TokenMetadata: TokenMetadata{
				TokenSymbol:   []byte(*spec.Properties.TokenSymbol),
				SS58Format:    *spec.Properties.SS58Format,
				TokenDecimals: *spec.Properties.TokenDecimals,
			},
			IsEthereum: isEthereum,
		},
	}, nil
}

func storageFromTop(top map[string]string) (storage []Item, err error) {
	storage = make([]Item, 0, len(top))
	for keyHex, valueHex := range top {
		key, err := common.HexToBytes(keyHex)
		if err != nil {
			return nil, fmt.Errorf("%w: key: %s", ErrInvalidHex, err)
		}

		value, err := common.HexToBytes(valueHex)
		if err != nil {
			return nil, fmt.Errorf("%w: value of key %s: %s", ErrInvalidHex, keyHex, err)
		}

		storage = append(storage, Item{Key: key, Value: value})
	}

	sort.Slice(storage, func(i, j int) bool {
		cmp := bytes.Compare(storage[i].Key, storage[j].Key)
		if cmp != 0 {
			return cmp < 0
		}
		return bytes.Compare(storage[i].Value, storage[j].Value) < 0
	})

	return storage, nil
}

// ToChainSpec converts genesis data registered on chain back to a raw chain spec
// for the given para id, chain type and relay chain. The boot nodes
// are stored separately on chain so the returned chain spec has none.
func ToChainSpec(gd GenesisData, paraID uint32, chainType, relayChain string) (
	spec *chainspec.ChainSpec, err error) {
	name, err := utf8String("name", gd.Name)
	if err != nil {
		return nil, err
	}

	id, err := utf8String("id", gd.ID)
	if err != nil {
		return nil, err
	}

	var forkID *string
	if ok, value := gd.ForkID.Unwrap(); ok {
		fork, err := utf8String("fork id", value)
		if err != nil {
			return nil, err
		}
		forkID = &fork
	}

	tokenSymbol, err := utf8String("token symbol", gd.Properties.TokenMetadata.TokenSymbol)
	if err != nil {
		return nil, err
	}
	ss58Format := gd.Properties.TokenMetadata.SS58Format
	tokenDecimals := gd.Properties.TokenMetadata.TokenDecimals
	isEthereum := gd.Properties.IsEthereum

	top := make(map[string]string, len(gd.Storage))
	for _, item := range gd.Storage {
		top[common.BytesToHex(item.Key)] = common.BytesToHex(item.Value)
	}

	return &chainspec.ChainSpec{
		Name:       name,
		ID:         id,
		ChainType:  chainType,
		ForkID:     forkID,
		BootNodes:  []string{},
		ProtocolID: fmt.Sprintf("container-chain-%d", paraID),
		Properties: chainspec.Properties{
			IsEthereum:    &isEthereum,
			SS58Format:    &ss58Format,
			TokenDecimals: &tokenDecimals,
			TokenSymbol:   &tokenSymbol,
		},
		RelayChain:      relayChain,
		ParaID:          paraID,
		CodeSubstitutes: map[string]string{},
		Genesis: chainspec.Genesis{
			Raw: chainspec.RawGenesis{
				Top:             top,
				ChildrenDefault: map[string]map[string]string{},
			},
		},
	}, nil
}

func utf8String(field string, b []byte) (s string, err error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s: 0x%x", ErrInvalidUTF8, field, b)
	}
	return string(b), nil
}
