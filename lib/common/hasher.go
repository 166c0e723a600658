// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2b128 returns the 128-bit blake2b hash of the input data
func Blake2b128(in []byte) ([]byte, error) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) []byte {
	hash := make([]byte, 8)
	binary.LittleEndian.PutUint64(hash, xxhash.Checksum64S(in, 0))
	return hash
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) []byte {
	hash := make([]byte, 16)
	binary.LittleEndian.PutUint64(hash[:8], xxhash.Checksum64S(msg, 0))
	binary.LittleEndian.PutUint64(hash[8:], xxhash.Checksum64S(msg, 1))
	return hash
}
