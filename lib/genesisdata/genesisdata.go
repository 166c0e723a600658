// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesisdata

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// GenesisData is the container chain genesis data stored by the
// registrar pallet. Fields are ordered as in the SCALE encoding.
type GenesisData struct {
	Storage    []Item
	Name       []byte
	ID         []byte
	ForkID     types.OptionBytes
	Extensions []byte
	Properties Properties
}

// Item is a raw genesis storage key value pair.
type Item struct {
	Key   []byte
	Value []byte
}

// Properties holds the token metadata of the container chain.
type Properties struct {
	TokenMetadata TokenMetadata
	IsEthereum    bool
}

// TokenMetadata describes the native token of the container chain.
type TokenMetadata struct {
	TokenSymbol   []byte
	SS58Format    uint32
	TokenDecimals uint32
}

// DefaultProperties returns the properties the runtime uses when none are given.
func DefaultProperties() Properties {
	return Properties{
		TokenMetadata: TokenMetadata{
			TokenSymbol:   []byte("UNIT"),
			SS58Format:    42,
			TokenDecimals: 12,
		},
	}
}
