// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

// Noop discards all metrics.
type Noop struct{}

// NewNoop returns a metrics implementation doing nothing.
func NewNoop() *Noop { return &Noop{} }

func (*Noop) BlockCreated() {}
func (*Noop) JumpDone(string) {}
func (*Noop) SessionObserved(uint32) {}
func (*Noop) BlockObserved(uint64) {}
