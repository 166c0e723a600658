// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StorageValueKey(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		pallet string
		item   string
		key    string
	}{
		"session_current_index": {
			pallet: "Session",
			item:   "CurrentIndex",
			key:    "0xcec5070d609dd3497f72bde07fc96ba072763800a36a99fdfc7c10f6415f6ee6",
		},
		"sudo_key": {
			pallet: "Sudo",
			item:   "Key",
			key:    "0x5c0d1176a568c1f92944340dbfed9e9c530ebca703c85910e7164cb7d1c9e47b",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			key := StorageValueKey(testCase.pallet, testCase.item)

			assert.Equal(t, testCase.key, BytesToHex(key))
		})
	}
}

func Test_Blake2128ConcatMapKey(t *testing.T) {
	t.Parallel()

	encodedParaID := EncodeParaID(2000)
	require.Equal(t, []byte{0xd0, 0x07, 0, 0}, encodedParaID)

	key, err := Blake2128ConcatMapKey("Registrar", "ParaGenesisData", encodedParaID)
	require.NoError(t, err)

	hashed, err := Blake2b128(encodedParaID)
	require.NoError(t, err)

	prefix := StorageValueKey("Registrar", "ParaGenesisData")
	assert.Len(t, key, 32+16+4)
	assert.Equal(t, prefix, key[:32])
	assert.Equal(t, hashed, key[32:48])
	assert.Equal(t, encodedParaID, key[48:])
}

func Test_Twox64ConcatMapKey(t *testing.T) {
	t.Parallel()

	encodedKey := []byte{1, 2, 3}
	key := Twox64ConcatMapKey("Paras", "Heads", encodedKey)

	assert.Len(t, key, 32+8+3)
	assert.Equal(t, Twox64(encodedKey), key[32:40])
	assert.Equal(t, encodedKey, key[40:])
}
