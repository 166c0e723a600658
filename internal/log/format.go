// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Format is the format of the log lines.
type Format uint8

const (
	// FormatConsole prints coloured levels, for terminals.
	FormatConsole Format = iota
	// FormatPlain prints levels without colour escape codes.
	FormatPlain
)
