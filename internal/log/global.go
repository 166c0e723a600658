// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global package logger and its children.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

// Infof using the global logger.
func Infof(format string, args ...interface{}) {
	globalLogger.log(Info, format, args...)
}

// Warnf using the global logger.
func Warnf(format string, args ...interface{}) {
	globalLogger.log(Warn, format, args...)
}

// Errorf using the global logger.
func Errorf(format string, args ...interface{}) {
	globalLogger.log(Error, format, args...)
}
