// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package registrar

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

type fakeStorage struct {
	values map[string][]byte
	err    error
}

func (f *fakeStorage) Storage(_ context.Context, key []byte, target interface{}) (ok bool, err error) {
	if f.err != nil {
		return false, f.err
	}
	value, ok := f.values[string(key)]
	if !ok {
		return false, nil
	}
	return true, codec.Decode(value, target)
}

func (f *fakeStorage) setAssignments(t *testing.T, paraID uint32, profileIDs ...uint64) {
	t.Helper()
	key, err := common.Blake2128ConcatMapKey("DataPreservers", "Assignments", common.EncodeParaID(paraID))
	require.NoError(t, err)
	encoded, err := codec.Encode(profileIDs)
	require.NoError(t, err)
	f.values[string(key)] = encoded
}

// setProfile stores the profile followed by its
// free assignment to para id 2000.
func (f *fakeStorage) setProfile(t *testing.T, profileID uint64, profile Profile) {
	t.Helper()
	encodedID := make([]byte, 8)
	binary.LittleEndian.PutUint64(encodedID, profileID)
	key, err := common.Blake2128ConcatMapKey("DataPreservers", "Profiles", encodedID)
	require.NoError(t, err)

	encodedProfile, err := codec.Encode(profile)
	require.NoError(t, err)

	value := make([]byte, 32+16)
	value = append(value, encodedProfile...)
	value = append(value, 1, 0xd0, 0x07, 0, 0, 0)
	f.values[string(key)] = value
}

func Test_BootNodes(t *testing.T) {
	t.Parallel()

	const otherBootNode = "/dns/boot.example.com/tcp/30333/p2p/" +
		"12D3KooWSDsmAa7iFbHdQW4X8B2KbeRYPDLarK6EbevUSYfGkeQw"

	testCases := map[string]struct {
		storageBuilder func(t *testing.T) *fakeStorage
		bootNodes      []string
		errWrapped     error
	}{
		"no_assignment": {
			storageBuilder: func(t *testing.T) *fakeStorage {
				return &fakeStorage{values: map[string][]byte{}}
			},
			bootNodes: []string{},
		},
		"boot_nodes_and_rpc": {
			storageBuilder: func(t *testing.T) *fakeStorage {
				storage := &fakeStorage{values: map[string][]byte{}}
				storage.setAssignments(t, 2000, 1, 4, 7, 9)
				storage.setProfile(t, 1, NewBootNodeProfile(bootNode))
				rpcProfile := NewBootNodeProfile("wss://rpc.example.com")
				rpcProfile.Mode = ProfileMode{IsRPC: true}
				storage.setProfile(t, 4, rpcProfile)
				storage.setProfile(t, 7, NewBootNodeProfile(otherBootNode))
				// profile 9 is missing
				return storage
			},
			bootNodes: []string{bootNode, otherBootNode},
		},
		"storage_error": {
			storageBuilder: func(t *testing.T) *fakeStorage {
				return &fakeStorage{err: errTest}
			},
			errWrapped: errTest,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			storage := testCase.storageBuilder(t)

			bootNodes, err := BootNodes(context.Background(), storage, 2000)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.bootNodes, bootNodes)
		})
	}
}
