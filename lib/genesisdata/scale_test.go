// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesisdata

import (
	"testing"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const containerChain2000SCALE = "0x0410636f64651801020304050650436f6e7461696e657220436861696e2032303030" +
	"50636f6e7461696e65722d636861696e2d32303030000010554e49542a0000000c00000000"

func Test_Encode(t *testing.T) {
	t.Parallel()

	withForkID := newContainerChain2000()
	withForkID.ForkID = types.NewOptionBytes([]byte("ab"))
	withForkID.Properties.IsEthereum = true

	testCases := map[string]struct {
		gd      GenesisData
		encoded string
	}{
		"container_chain_2000": {
			gd:      newContainerChain2000(),
			encoded: containerChain2000SCALE,
		},
		"fork_id_and_ethereum": {
			gd: withForkID,
			encoded: "0x0410636f64651801020304050650436f6e7461696e657220436861696e2032303030" +
				"50636f6e7461696e65722d636861696e2d32303030" +
				"01086162" +
				"0010554e49542a0000000c00000001",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := Encode(testCase.gd)

			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, common.BytesToHex(encoded))
		})
	}
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	gd, err := Decode(common.MustHexToBytes(containerChain2000SCALE))
	require.NoError(t, err)

	assert.Equal(t, newContainerChain2000(), gd)
}

func Test_Decode_emptyFields(t *testing.T) {
	t.Parallel()

	expected := GenesisData{
		Storage:    []Item{{Key: []byte{}, Value: []byte{}}},
		Name:       []byte{},
		ID:         []byte{},
		ForkID:     types.NewOptionBytes([]byte{}),
		Extensions: []byte{},
		Properties: Properties{
			TokenMetadata: TokenMetadata{TokenSymbol: []byte{}},
		},
	}

	encoded, err := Encode(expected)
	require.NoError(t, err)

	gd, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, expected, gd)
}

func Test_Decode_truncated(t *testing.T) {
	t.Parallel()

	encoded := common.MustHexToBytes(containerChain2000SCALE)

	_, err := Decode(encoded[:10])

	assert.Error(t, err)
}

func Test_Encode_Decode_fromChainSpec(t *testing.T) {
	t.Parallel()

	spec := newLocalTestnet()
	spec.ForkID = ptrTo("fork")

	expected, err := FromChainSpec(spec)
	require.NoError(t, err)

	encoded, err := Encode(expected)
	require.NoError(t, err)

	gd, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, expected, gd)
}
