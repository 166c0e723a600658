// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chainspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Read reads and parses the raw chain spec JSON file at path.
func Read(path string) (spec *ChainSpec, err error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading chain spec: %w", err)
	}

	spec, err = Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing chain spec %s: %w", path, err)
	}

	return spec, nil
}

// Parse parses raw chain spec JSON data.
// Numbers are decoded straight into their integer fields and never
// through a float64, so integers above 2^53 keep their exact value.
func Parse(data []byte) (spec *ChainSpec, err error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	spec = new(ChainSpec)
	err = decoder.Decode(spec)
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// Marshal encodes the chain spec as indented JSON, the way
// `build-spec` writes it. Numbers are written as plain integer
// literals, never in exponent notation.
func Marshal(spec *ChainSpec) (data []byte, err error) {
	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	err = encoder.Encode(spec)
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// Write writes the chain spec as JSON to the file at path.
func Write(path string, spec *ChainSpec) (err error) {
	data, err := Marshal(spec)
	if err != nil {
		return fmt.Errorf("encoding chain spec: %w", err)
	}

	const perms = 0644
	err = os.WriteFile(filepath.Clean(path), data, perms)
	if err != nil {
		return fmt.Errorf("writing chain spec: %w", err)
	}

	return nil
}
