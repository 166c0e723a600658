// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"testing"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/stretchr/testify/assert"
)

func Test_NewSigner(t *testing.T) {
	t.Parallel()

	const aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

	testCases := map[string]struct {
		secret     string
		address    string
		errWrapped error
	}{
		"empty": {
			secret:     " ",
			errWrapped: ErrSecretEmpty,
		},
		"alice_seed": {
			secret:  "0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a",
			address: aliceAddress,
		},
		"alice_dev_secret": {
			secret:  "//Alice",
			address: aliceAddress,
		},
		"dev_phrase_with_path": {
			secret:  "bottom drive obey lake curtain smoke basket hold race lonely fit walk//Alice",
			address: aliceAddress,
		},
		"seed_too_short": {
			secret:     "0xe5be9a50",
			errWrapped: ErrSeedLength,
		},
		"seed_odd_length": {
			secret:     "0xe5be9a5",
			errWrapped: common.ErrOddLength,
		},
		"invalid_mnemonic": {
			secret:     "bottom drive obey lake curtain smoke basket hold race lonely fit notaword",
			errWrapped: ErrMnemonicInvalid,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			signer, err := NewSigner(testCase.secret)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.address, signer.Address)
		})
	}
}
