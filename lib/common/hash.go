// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/json"
	"fmt"
)

// HashLength is the expected length of the common.Hash type
const HashLength = 32

// EmptyHash is the zero value of a Hash.
var EmptyHash = Hash{}

// Hash is a 32 bytes block or extrinsic hash.
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// HexToHash parses a 0x prefixed hex string into a Hash.
func HexToHash(in string) (hash Hash, err error) {
	b, err := HexToBytes(in)
	if err != nil {
		return hash, err
	}

	if len(b) != HashLength {
		return hash, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidHashLength, HashLength, len(b))
	}

	return NewHash(b), nil
}

// IsEmpty returns true if the hash is empty, false otherwise.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// MarshalJSON converts hash to a JSON hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON converts a JSON hex string to a hash.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	*h, err = HexToHash(s)
	return err
}
