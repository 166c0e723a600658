// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/tanssi-tools/lib/chainspec"
	"github.com/stretchr/testify/require"
)

const testBootNode = "/ip4/127.0.0.1/tcp/30333/p2p/12D3KooWSDsmAa7iFbHdQW4X8B2KbeRYPDLarK6EbevUSYfGkeQw"

func ptrTo[T any](value T) *T {
	return &value
}

// runApp runs the application with the given arguments and returns
// what it wrote to its standard output.
func runApp(t *testing.T, args ...string) (output string, err error) {
	t.Helper()

	app := newApp()
	buffer := bytes.NewBuffer(nil)
	app.Writer = buffer
	app.ErrWriter = io.Discard

	args = append([]string{app.Name, "--log", "crit"}, args...)
	err = app.Run(args)
	return buffer.String(), err
}

// newTestChainSpec returns a raw chain spec which converts to genesis
// data and back without differences besides its boot nodes.
func newTestChainSpec() *chainspec.ChainSpec {
	return &chainspec.ChainSpec{
		Name:       "Container Chain 2000",
		ID:         "container-chain-2000",
		ChainType:  chainspec.ChainTypeLocal,
		BootNodes:  []string{testBootNode},
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
					chainspec.CodeKey: "0x0102",
					"0xf0c365c3cf59d671eb72da0e7a4113c49f1f0515f462cdcf84e0f1d6045ea429": "0x0000",
				},
				ChildrenDefault: map[string]map[string]string{},
			},
		},
	}
}

// writeChainSpec writes the chain spec to a temporary file
// and returns its path.
func writeChainSpec(t *testing.T, spec *chainspec.ChainSpec) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), "chain-spec.json")
	err := chainspec.Write(path, spec)
	require.NoError(t, err)
	return path
}
