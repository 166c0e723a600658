// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	"github.com/ChainSafe/tanssi-tools/internal/metrics"
	"github.com/ChainSafe/tanssi-tools/internal/retry"
	"github.com/ChainSafe/tanssi-tools/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "progress"))

// ErrDeadlineExceeded is returned when a jump or wait does not
// reach its target before the deadline.
var ErrDeadlineExceeded = fmt.Errorf("progression %w", context.DeadlineExceeded)

// ErrSessionOverflow is returned when the target session index
// does not fit in an unsigned 32 bit integer.
var ErrSessionOverflow = errors.New("target session index overflows")

// Progressor drives block production on a chain until a target
// session index or block number is reached.
// Block production is strictly sequential for each call, but
// several calls may run concurrently on different chains.
type Progressor struct {
	chain        Chain
	timeout      time.Duration
	pollInterval time.Duration
	metrics      Metrics
	logger       *log.Logger
}

// New creates a progressor for the given chain.
func New(chain Chain, settings Settings) *Progressor {
	settings.setDefaults()
	return &Progressor{
		chain:        chain,
		timeout:      settings.Timeout,
		pollInterval: *settings.PollInterval,
		metrics:      settings.Metrics,
		logger:       settings.Logger,
	}
}

func (p *Progressor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout == 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

// JumpToSession creates blocks one at a time until the current session
// index equals target. It returns the hash of the last block created
// and ok as true once the target session is reached. If the target is
// already reached, no block is created and the returned hash is the zero hash.
// If the current session index is already past the target, no block is
// created and ok is returned as false.
func (p *Progressor) JumpToSession(ctx context.Context, target uint32) (
	hash common.Hash, ok bool, err error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var current uint32
	blocksCreated := 0
	for {
		err = ctx.Err()
		if err != nil {
			return p.jumpFailed(ctx, fmt.Errorf("jumping to session %d after %d blocks: %w",
				target, blocksCreated, err))
		}

		current, err = p.chain.CurrentSessionIndex(ctx)
		if err != nil {
			return p.jumpFailed(ctx, fmt.Errorf("getting current session index: %w", err))
		}
		p.metrics.SessionObserved(current)

		switch {
		case current == target:
			p.logger.Debugf("reached session %d after creating %d blocks", target, blocksCreated)
			p.metrics.JumpDone(metrics.OutcomeSuccess)
			return hash, true, nil
		case current > target:
			p.logger.Warnf("current session %d is past target session %d", current, target)
			p.metrics.JumpDone(metrics.OutcomeOvershoot)
			return common.Hash{}, false, nil
		}

		hash, err = p.createBlock(ctx)
		if err != nil {
			return p.jumpFailed(ctx, err)
		}
		blocksCreated++
		p.logger.Tracef("created block %s in session %d, target session is %d",
			hash.Short(), current, target)
	}
}

// JumpSessions creates blocks until count sessions have passed
// from the current session index. See JumpToSession.
func (p *Progressor) JumpSessions(ctx context.Context, count uint32) (
	hash common.Hash, ok bool, err error) {
	current, err := p.chain.CurrentSessionIndex(ctx)
	if err != nil {
		return common.Hash{}, false, fmt.Errorf("getting current session index: %w", err)
	}

	target, err := sessionTarget(current, count)
	if err != nil {
		return common.Hash{}, false, err
	}
	return p.JumpToSession(ctx, target)
}

// JumpBlocks creates exactly count blocks one after the other
// and returns the hash of the last block created.
func (p *Progressor) JumpBlocks(ctx context.Context, count uint) (hash common.Hash, err error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	for i := uint(0); i < count; i++ {
		err = ctx.Err()
		if err != nil {
			_, _, err = p.jumpFailed(ctx, fmt.Errorf("creating block %d of %d: %w", i+1, count, err))
			return common.Hash{}, err
		}

		hash, err = p.createBlock(ctx)
		if err != nil {
			_, _, err = p.jumpFailed(ctx, err)
			return common.Hash{}, err
		}
	}

	p.metrics.JumpDone(metrics.OutcomeSuccess)
	return hash, nil
}

// JumpToBlock creates blocks until the next block to be created
// has the target number, and returns the hash of the last block created.
// No block is created if the chain is already at or past target - 1.
func (p *Progressor) JumpToBlock(ctx context.Context, target uint64) (hash common.Hash, err error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var number uint64
	for {
		err = ctx.Err()
		if err != nil {
			_, _, err = p.jumpFailed(ctx, fmt.Errorf("jumping to block %d: %w", target, err))
			return common.Hash{}, err
		}

		number, err = p.chain.BlockNumber(ctx)
		if err != nil {
			_, _, err = p.jumpFailed(ctx, fmt.Errorf("getting block number: %w", err))
			return common.Hash{}, err
		}
		p.metrics.BlockObserved(number)

		if number+1 >= target {
			p.metrics.JumpDone(metrics.OutcomeSuccess)
			return hash, nil
		}

		hash, err = p.createBlock(ctx)
		if err != nil {
			_, _, err = p.jumpFailed(ctx, err)
			return common.Hash{}, err
		}
	}
}

// EarlyExit is called between polls when waiting for a session.
// Returning exit as true stops the wait without reaching the target.
type EarlyExit func(ctx context.Context) (exit bool, err error)

// WaitToSession waits for a chain producing blocks on its own to reach
// the target session, polling the session index every poll interval.
// It returns the best block hash and ok as true once the target session
// is reached. It returns ok as false if the session index goes past the
// target or if the optional earlyExit function returns true. The earlyExit
// function is called before each session index query.
func (p *Progressor) WaitToSession(ctx context.Context, target uint32, earlyExit EarlyExit) (
	hash common.Hash, ok bool, err error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	err = retry.UntilOK(ctx, p.pollInterval, func(ctx context.Context) (done bool, err error) {
		if earlyExit != nil {
			exit, err := earlyExit(ctx)
			if err != nil {
				return false, fmt.Errorf("checking early exit: %w", err)
			} else if exit {
				p.logger.Infof("stopped waiting for session %d", target)
				return true, nil
			}
		}

		current, err := p.chain.CurrentSessionIndex(ctx)
		if err != nil {
			return false, fmt.Errorf("getting current session index: %w", err)
		}
		p.metrics.SessionObserved(current)

		switch {
		case current == target:
			hash, err = p.chain.BestBlockHash(ctx)
			if err != nil {
				return false, fmt.Errorf("getting best block hash: %w", err)
			}
			ok = true
			return true, nil
		case current > target:
			p.logger.Warnf("current session %d is past target session %d", current, target)
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return p.jumpFailed(ctx, fmt.Errorf("waiting for session %d: %w", target, err))
	}

	if !ok {
		p.metrics.JumpDone(metrics.OutcomeOvershoot)
		return common.Hash{}, false, nil
	}

	p.metrics.JumpDone(metrics.OutcomeSuccess)
	return hash, true, nil
}

// WaitSessions waits for count sessions to pass from the current
// session index. See WaitToSession.
func (p *Progressor) WaitSessions(ctx context.Context, count uint32, earlyExit EarlyExit) (
	hash common.Hash, ok bool, err error) {
	current, err := p.chain.CurrentSessionIndex(ctx)
	if err != nil {
		return common.Hash{}, false, fmt.Errorf("getting current session index: %w", err)
	}

	target, err := sessionTarget(current, count)
	if err != nil {
		return common.Hash{}, false, err
	}
	return p.WaitToSession(ctx, target, earlyExit)
}

func sessionTarget(current, count uint32) (target uint32, err error) {
	if count > math.MaxUint32-current {
		return 0, fmt.Errorf("%w: %d sessions after session %d", ErrSessionOverflow, count, current)
	}
	return current + count, nil
}

func (p *Progressor) createBlock(ctx context.Context) (hash common.Hash, err error) {
	hash, err = p.chain.CreateBlock(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("creating block: %w", err)
	}
	p.metrics.BlockCreated()
	return hash, nil
}

func (p *Progressor) jumpFailed(ctx context.Context, err error) (
	hash common.Hash, ok bool, wrappedErr error) {
	p.metrics.JumpDone(metrics.OutcomeError)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return common.Hash{}, false, fmt.Errorf("%w: %s", ErrDeadlineExceeded, err)
	}
	return common.Hash{}, false, err
}
