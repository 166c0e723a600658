// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesisdata

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// Encode SCALE encodes the genesis data, as expected by
// the `Registrar.register` call.
func Encode(gd GenesisData) (encoded []byte, err error) {
	encoded, err = codec.Encode(gd)
	if err != nil {
		return nil, fmt.Errorf("scale encoding genesis data: %w", err)
	}
	return encoded, nil
}

// Decode decodes SCALE encoded genesis data, as stored
// in `Registrar.ParaGenesisData`.
func Decode(encoded []byte) (gd GenesisData, err error) {
	err = codec.Decode(encoded, &gd)
	if err != nil {
		return gd, fmt.Errorf("scale decoding genesis data: %w", err)
	}
	gd.setEmptyBytes()
	return gd, nil
}

// setEmptyBytes replaces nil byte slices left by the SCALE decoder
// with empty ones, so decoded genesis data compares equal to the
// genesis data built from a chain spec.
func (gd *GenesisData) setEmptyBytes() {
	if gd.Storage == nil {
		gd.Storage = []Item{}
	}
	for i := range gd.Storage {
		gd.Storage[i].Key = nonNil(gd.Storage[i].Key)
		gd.Storage[i].Value = nonNil(gd.Storage[i].Value)
	}
	gd.Name = nonNil(gd.Name)
	gd.ID = nonNil(gd.ID)
	if ok, forkID := gd.ForkID.Unwrap(); ok {
		gd.ForkID = types.NewOptionBytes(nonNil(forkID))
	}
	gd.Extensions = nonNil(gd.Extensions)
	gd.Properties.TokenMetadata.TokenSymbol = nonNil(gd.Properties.TokenMetadata.TokenSymbol)
}
