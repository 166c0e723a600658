// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chainspec

import (
	"testing"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RuntimeCode(t *testing.T) {
	t.Parallel()

	wasm := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := append(append([]byte{}, zstdPrefix...), encoder.EncodeAll(wasm, nil)...)
	err = encoder.Close()
	require.NoError(t, err)

	testCases := map[string]struct {
		top        map[string]string
		code       []byte
		compressed bool
		errWrapped error
	}{
		"no_code": {
			top:        map[string]string{},
			errWrapped: ErrNoRuntimeCode,
		},
		"invalid_hex": {
			top:        map[string]string{CodeKey: "0x0"},
			errWrapped: common.ErrOddLength,
		},
		"uncompressed": {
			top:  map[string]string{CodeKey: common.BytesToHex(wasm)},
			code: wasm,
		},
		"compressed": {
			top:        map[string]string{CodeKey: common.BytesToHex(compressed)},
			code:       wasm,
			compressed: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			spec := &ChainSpec{Genesis: Genesis{Raw: RawGenesis{Top: testCase.top}}}

			code, compressed, err := RuntimeCode(spec)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.code, code)
			assert.Equal(t, testCase.compressed, compressed)
		})
	}
}
