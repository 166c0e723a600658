// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option modifies the settings of a logger.
type Option func(o *optionSet)

type optionSet struct {
	writer  io.Writer
	level   *Level
	format  *Format
	context []field
}

func collect(options []Option) (o optionSet) {
	for _, option := range options {
		option(&o)
	}
	return o
}

// SetLevel sets the minimum level of lines logged.
func SetLevel(level Level) Option {
	return func(o *optionSet) { o.level = &level }
}

// SetFormat sets the format of the log lines.
func SetFormat(format Format) Option {
	return func(o *optionSet) { o.format = &format }
}

// SetWriter sets the writer the log lines are written to.
func SetWriter(writer io.Writer) Option {
	return func(o *optionSet) { o.writer = writer }
}

// AddContext appends a key=value pair to every line logged.
func AddContext(key, value string) Option {
	return func(o *optionSet) {
		o.context = append(o.context, field{key: key, value: value})
	}
}
