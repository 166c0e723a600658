// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chainspec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/klauspost/compress/zstd"
)

var ErrNoRuntimeCode = errors.New("no runtime code in genesis storage")

// zstdPrefix flags a zstd compressed Wasm blob,
// see sp-maybe-compressed-blob.
var zstdPrefix = []byte{82, 188, 83, 118, 70, 219, 142, 5}

// RuntimeCode returns the runtime Wasm code stored under :code in the
// raw genesis storage, decompressed if it is zstd compressed.
// The compressed flag is true if the stored code was compressed.
func RuntimeCode(spec *ChainSpec) (code []byte, compressed bool, err error) {
	codeHex, ok := spec.Genesis.Raw.Top[CodeKey]
	if !ok {
		return nil, false, ErrNoRuntimeCode
	}

	stored, err := common.HexToBytes(codeHex)
	if err != nil {
		return nil, false, fmt.Errorf("decoding runtime code: %w", err)
	}

	compressed = bytes.HasPrefix(stored, zstdPrefix)
	code, err = decompressWasm(stored)
	if err != nil {
		return nil, compressed, fmt.Errorf("decompressing runtime code: %w", err)
	}

	return code, compressed, nil
}

func decompressWasm(code []byte) ([]byte, error) {
	if !bytes.HasPrefix(code, zstdPrefix) {
		return code, nil
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	return decoder.DecodeAll(code[len(zstdPrefix):], nil)
}
