// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chainspec

func ptrTo[T any](value T) *T {
	return &value
}

func newLocalTestnet() *ChainSpec {
	return &ChainSpec{
		Name:       "Local Testnet",
		ID:         "local_testnet",
		ChainType:  ChainTypeLocal,
		BootNodes:  []string{},
		ProtocolID: "container-chain-2000",
		Properties: Properties{
			IsEthereum:    ptrTo(false),
			SS58Format:    ptrTo(uint32(42)),
			TokenDecimals: ptrTo(uint32(12)),
			TokenSymbol:   ptrTo("UNIT"),
		},
		RelayChain:      "rococo-local",
		ParaID:          2000,
		CodeSubstitutes: map[string]string{},
		Genesis: Genesis{
			Raw: RawGenesis{
				Top: map[string]string{
					"0xf0c365c3cf59d671eb72da0e7a4113c49f1f0515f462cdcf84e0f1d6045dfcbb": "0x0000",
					CodeKey: "0x0061736d01000000",
				},
				ChildrenDefault: map[string]map[string]string{},
			},
		},
	}
}
