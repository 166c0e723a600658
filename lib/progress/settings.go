// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package progress

import (
	"time"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	"github.com/ChainSafe/tanssi-tools/internal/metrics"
)

// Settings for the progressor.
type Settings struct {
	// Timeout bounds each jump or wait operation.
	// Zero means no timeout besides the caller context.
	Timeout time.Duration
	// PollInterval is the interval between session queries
	// when waiting for a node producing blocks on its own.
	// It defaults to one second.
	PollInterval *time.Duration
	// Metrics defaults to a no-op implementation.
	Metrics Metrics
	// Logger defaults to the package logger.
	Logger *log.Logger
}

func (s *Settings) setDefaults() {
	if s.PollInterval == nil {
		defaultPollInterval := time.Second
		s.PollInterval = &defaultPollInterval
	}

	if s.Metrics == nil {
		s.Metrics = metrics.NewNoop()
	}

	if s.Logger == nil {
		s.Logger = logger
	}
}
