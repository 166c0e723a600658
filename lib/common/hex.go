// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrNoPrefix          = errors.New("hex string has no 0x prefix")
	ErrOddLength         = errors.New("hex string has odd length")
	ErrInvalidHex        = errors.New("invalid hex string")
	ErrInvalidHashLength = errors.New("invalid hash length")
)

// HexToBytes decodes a 0x prefixed hex string. The empty
// payload "0x" decodes to an empty, non nil, byte slice.
func HexToBytes(in string) (b []byte, err error) {
	b, err = hexutil.Decode(in)
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, hexutil.ErrEmptyString), errors.Is(err, hexutil.ErrMissingPrefix):
		return nil, fmt.Errorf("%w: %q", ErrNoPrefix, in)
	case errors.Is(err, hexutil.ErrOddLength):
		return nil, fmt.Errorf("%w: %q", ErrOddLength, in)
	default:
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidHex, in, err)
	}
}

// MustHexToBytes decodes a 0x prefixed hex string and panics on error.
func MustHexToBytes(in string) []byte {
	b, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return b
}

// BytesToHex encodes bytes to a lowercase 0x prefixed hex string.
func BytesToHex(in []byte) string {
	return hexutil.Encode(in)
}
