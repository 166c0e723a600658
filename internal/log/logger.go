// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
	"sync"
)

// Logger writes levelled log lines. It is safe for concurrent use,
// and child loggers share the mutex of their root logger.
type Logger struct {
	writer   io.Writer
	level    Level
	format   Format
	context  []field
	children []*Logger
	mutex    *sync.Mutex
}

type field struct {
	key   string
	value string
}

// New creates a root logger writing to os.Stdout at the info
// level in the console format, unless options say otherwise.
func New(options ...Option) *Logger {
	l := &Logger{
		writer: os.Stdout,
		level:  Info,
		format: FormatConsole,
		mutex:  new(sync.Mutex),
	}
	l.apply(collect(options))
	return l
}

// New creates a child logger inheriting the settings and context of l.
// Patching l later also patches the child.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	child := &Logger{
		writer:  l.writer,
		level:   l.level,
		format:  l.format,
		context: append([]field(nil), l.context...),
		mutex:   l.mutex,
	}
	child.apply(collect(options))
	l.children = append(l.children, child)
	return child
}

// Patch changes the settings of l and all its children.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patch(collect(options))
}

func (l *Logger) patch(o optionSet) {
	l.apply(o)
	for _, child := range l.children {
		child.patch(o)
	}
}

func (l *Logger) apply(o optionSet) {
	if o.writer != nil {
		l.writer = o.writer
	}
	if o.level != nil {
		l.level = *o.level
	}
	if o.format != nil {
		l.format = *o.format
	}
	l.context = append(l.context, o.context...)
}
