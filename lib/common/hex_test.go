// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HexToBytes(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		in         string
		b          []byte
		errWrapped error
	}{
		"empty_payload": {
			in: "0x",
			b:  []byte{},
		},
		"bytes": {
			in: "0x00ff10",
			b:  []byte{0, 0xff, 0x10},
		},
		"uppercase": {
			in: "0xABCD",
			b:  []byte{0xab, 0xcd},
		},
		"empty_string": {
			errWrapped: ErrNoPrefix,
		},
		"no_prefix": {
			in:         "abcd",
			errWrapped: ErrNoPrefix,
		},
		"odd_length": {
			in:         "0xabc",
			errWrapped: ErrOddLength,
		},
		"not_hex": {
			in:         "0xzz",
			errWrapped: ErrInvalidHex,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b, err := HexToBytes(testCase.in)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.b, b)
		})
	}
}

func Test_HexToHash(t *testing.T) {
	t.Parallel()

	const hashHex = "0x4545454545454545454545454545454545454545454545454545454545454545"
	hash, err := HexToHash(hashHex)
	assert.NoError(t, err)
	assert.Equal(t, hashHex, hash.String())
	assert.Equal(t, "0x45454545...45454545", hash.Short())

	_, err = HexToHash("0x4545")
	assert.ErrorIs(t, err, ErrInvalidHashLength)
}
