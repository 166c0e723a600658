// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tanssi_tools"

// Jump outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeOvershoot = "overshoot"
	OutcomeError     = "error"
)

// Prometheus holds the block and session progression collectors.
type Prometheus struct {
	blocksCreated prometheus.Counter
	jumps         *prometheus.CounterVec
	sessionIndex  prometheus.Gauge
	blockNumber   prometheus.Gauge
}

// NewPrometheus creates the progression collectors and registers
// them with the given registerer.
func NewPrometheus(registerer prometheus.Registerer) (metrics *Prometheus, err error) {
	metrics = new(Prometheus)
	collectorsToRegister := make(map[string]prometheus.Collector)

	metrics.blocksCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "progress",
		Name:      "blocks_created_total",
		Help:      "number of blocks created through manual seal",
	})
	collectorsToRegister["blocks created counter"] = metrics.blocksCreated

	metrics.jumps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "progress",
		Name:      "jumps_total",
		Help:      "number of finished session and block jumps by outcome",
	}, []string{"outcome"})
	collectorsToRegister["jumps counter"] = metrics.jumps

	metrics.sessionIndex = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "progress",
		Name:      "session_index",
		Help:      "last observed session index",
	})
	collectorsToRegister["session index gauge"] = metrics.sessionIndex

	metrics.blockNumber = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "progress",
		Name:      "block_number",
		Help:      "last observed block number",
	})
	collectorsToRegister["block number gauge"] = metrics.blockNumber

	for collectorName, collectorToRegister := range collectorsToRegister {
		err = registerer.Register(collectorToRegister)
		if err != nil && !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
			return nil, fmt.Errorf("cannot register %s: %w", collectorName, err)
		}
	}

	return metrics, nil
}

// BlockCreated increments the blocks created counter.
func (p *Prometheus) BlockCreated() {
	p.blocksCreated.Inc()
}

// JumpDone increments the jumps counter for the given outcome.
func (p *Prometheus) JumpDone(outcome string) {
	p.jumps.WithLabelValues(outcome).Inc()
}

// SessionObserved sets the session index gauge.
func (p *Prometheus) SessionObserved(index uint32) {
	p.sessionIndex.Set(float64(index))
}

// BlockObserved sets the block number gauge.
func (p *Prometheus) BlockObserved(number uint64) {
	p.blockNumber.Set(float64(number))
}
