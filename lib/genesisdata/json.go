// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesisdata

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// jsonGenesisData is the JSON form of the genesis data, as used by
// the runtime and the polkadot.js apps: byte strings are 0x hex
// except for the token symbol which is an array of numbers.
type jsonGenesisData struct {
	Storage    []jsonItem     `json:"storage"`
	Name       hexutil.Bytes  `json:"name"`
	ID         hexutil.Bytes  `json:"id"`
	ForkID     *hexutil.Bytes `json:"fork_id"`
	Extensions hexutil.Bytes  `json:"extensions"`
	Properties jsonProperties `json:"properties"`
}

type jsonItem struct {
	Key   hexutil.Bytes `json:"key"`
	Value hexutil.Bytes `json:"value"`
}

type jsonProperties struct {
	TokenMetadata jsonTokenMetadata `json:"token_metadata"`
	IsEthereum    bool              `json:"is_ethereum"`
}

type jsonTokenMetadata struct {
	TokenSymbol   byteArray `json:"token_symbol"`
	SS58Format    uint32    `json:"ss58_format"`
	TokenDecimals uint32    `json:"token_decimals"`
}

var ErrByteOverflow = errors.New("byte value overflows")

// byteArray is encoded in JSON as an array of numbers
// instead of the base64 string used for []byte.
type byteArray []byte

func (b byteArray) MarshalJSON() ([]byte, error) {
	numbers := make([]uint16, len(b))
	for i := range b {
		numbers[i] = uint16(b[i])
	}
	return json.Marshal(numbers)
}

func (b *byteArray) UnmarshalJSON(data []byte) error {
	var numbers []uint16
	err := json.Unmarshal(data, &numbers)
	if err != nil {
		return err
	}

	decoded := make([]byte, len(numbers))
	for i, number := range numbers {
		if number > 0xff {
			return fmt.Errorf("%w: %d at index %d", ErrByteOverflow, number, i)
		}
		decoded[i] = byte(number)
	}
	*b = decoded
	return nil
}

// MarshalJSON encodes the genesis data in its JSON form.
func (gd GenesisData) MarshalJSON() ([]byte, error) {
	storage := make([]jsonItem, len(gd.Storage))
	for i, item := range gd.Storage {
		storage[i] = jsonItem{Key: item.Key, Value: item.Value}
	}

	var forkID *hexutil.Bytes
	if ok, value := gd.ForkID.Unwrap(); ok {
		fork := hexutil.Bytes(value)
		forkID = &fork
	}

	return json.Marshal(jsonGenesisData{
		Storage:    storage,
		Name:       nonNil(gd.Name),
		ID:         nonNil(gd.ID),
		ForkID:     forkID,
		Extensions: nonNil(gd.Extensions),
		Properties: jsonProperties{
			TokenMetadata: jsonTokenMetadata{
				TokenSymbol:   nonNil(gd.Properties.TokenMetadata.TokenSymbol),
				SS58Format:    gd.Properties.TokenMetadata.SS58Format,
				TokenDecimals: gd.Properties.TokenMetadata.TokenDecimals,
			},
			IsEthereum: gd.Properties.IsEthereum,
		},
	})
}

// UnmarshalJSON decodes the genesis data from its JSON form.
func (gd *GenesisData) UnmarshalJSON(data []byte) error {
	var decoded jsonGenesisData
	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return err
	}

	storage := make([]Item, len(decoded.Storage))
	for i, item := range decoded.Storage {
		storage[i] = Item{Key: nonNil(item.Key), Value: nonNil(item.Value)}
	}

	forkID := types.NewOptionBytesEmpty()
	if decoded.ForkID != nil {
		forkID = types.NewOptionBytes(nonNil(*decoded.ForkID))
	}

	*gd = GenesisData{
		Storage:    storage,
		Name:       nonNil(decoded.Name),
		ID:         nonNil(decoded.ID),
		ForkID:     forkID,
		Extensions: nonNil(decoded.Extensions),
		Properties: Properties{
			TokenMetadata: TokenMetadata{
				TokenSymbol:   nonNil(decoded.Properties.TokenMetadata.TokenSymbol),
				SS58Format:    decoded.Properties.TokenMetadata.SS58Format,
				TokenDecimals: decoded.Properties.TokenMetadata.TokenDecimals,
			},
			IsEthereum: decoded.Properties.IsEthereum,
		},
	}
	return nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
