// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"
	"fmt"
)

// StorageValueKey returns the key of a plain storage value,
// twox128(pallet) ++ twox128(item).
func StorageValueKey(pallet, item string) []byte {
	key := make([]byte, 0, 32)
	key = append(key, Twox128Hash([]byte(pallet))...)
	key = append(key, Twox128Hash([]byte(item))...)
	return key
}

// Blake2128ConcatMapKey returns the key of a storage map entry hashed
// with Blake2_128Concat, for an already SCALE encoded map key.
func Blake2128ConcatMapKey(pallet, item string, encodedKey []byte) ([]byte, error) {
	hashed, err := Blake2b128(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("hashing map key: %w", err)
	}

	key := StorageValueKey(pallet, item)
	key = append(key, hashed...)
	key = append(key, encodedKey...)
	return key, nil
}

// Twox64ConcatMapKey returns the key of a storage map entry hashed
// with Twox64Concat, for an already SCALE encoded map key.
func Twox64ConcatMapKey(pallet, item string, encodedKey []byte) []byte {
	key := StorageValueKey(pallet, item)
	key = append(key, Twox64(encodedKey)...)
	key = append(key, encodedKey...)
	return key
}

// EncodeParaID SCALE encodes a para id, a little endian u32.
func EncodeParaID(paraID uint32) []byte {
	encoded := make([]byte, 4)
	binary.LittleEndian.PutUint32(encoded, paraID)
	return encoded
}
