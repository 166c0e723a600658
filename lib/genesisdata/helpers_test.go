// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesisdata

import (
	"github.com/ChainSafe/tanssi-tools/lib/chainspec"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

func ptrTo[T any](value T) *T {
	return &value
}

const (
	timestampNowKey = "0xf0c365c3cf59d671eb72da0e7a4113c49f1f0515f462cdcf84e0f1d6045ea429"
	codeKey         = "0x3a636f6465"
)

// newLocalTestnet returns the raw chain spec of a container chain
// with para id 2000, as exported by `build-spec --raw`.
func newLocalTestnet() *chainspec.ChainSpec {
	return &chainspec.ChainSpec{
		Name:       "Local Testnet",
		ID:         "local_testnet",
		ChainType:  chainspec.ChainTypeLocal,
		BootNodes:  []string{},
		ProtocolID: "container-chain-2000",
		Properties: chainspec.Properties{
			IsEthereum:    ptrTo(false),
			SS58Format:    ptrTo(uint32(42)),
			TokenDecimals: ptrTo(uint32(12)),
			TokenSymbol:   ptrTo("UNIT"),
		},
		RelayChain:      "rococo-local",
		ParaID:          2000,
		CodeSubstitutes: map[string]string{},
		Genesis: chainspec.Genesis{
			Raw: chainspec.RawGenesis{
				Top: map[string]string{
					timestampNowKey: "0x0000",
				},
				ChildrenDefault: map[string]map[string]string{},
			},
		},
	}
}

// newContainerChain2000 returns the genesis data of the
// "Container Chain 2000" test chain.
func newContainerChain2000() GenesisData {
	return GenesisData{
		Storage: []Item{
			{Key: []byte("code"), Value: []byte{1, 2, 3, 4, 5, 6}},
		},
		Name:       []byte("Container Chain 2000"),
		ID:         []byte("container-chain-2000"),
		ForkID:     types.NewOptionBytesEmpty(),
		Extensions: []byte{},
		Properties: DefaultProperties(),
	}
}
