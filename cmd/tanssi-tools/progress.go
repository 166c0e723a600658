// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/tanssi-tools/internal/metrics"
	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/ChainSafe/tanssi-tools/lib/node"
	"github.com/ChainSafe/tanssi-tools/lib/progress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

const defaultPollInterval = time.Second

var ErrSessionPassed = errors.New("current session is past the target session")

func jumpSessionsAction(ctx *cli.Context) (err error) {
	count := uint32(ctx.Uint(CountFlag.Name))
	return withProgressor(ctx, func(runCtx context.Context, progressor *progress.Progressor) (err error) {
		hash, ok, err := progressor.JumpSessions(runCtx, count)
		return sessionReached(ctx, hash, ok, err)
	})
}

func jumpToSessionAction(ctx *cli.Context) (err error) {
	target := uint32(ctx.Uint(SessionFlag.Name))
	return withProgressor(ctx, func(runCtx context.Context, progressor *progress.Progressor) (err error) {
		hash, ok, err := progressor.JumpToSession(runCtx, target)
		return sessionReached(ctx, hash, ok, err)
	})
}

func jumpBlocksAction(ctx *cli.Context) (err error) {
	count := ctx.Uint(CountFlag.Name)
	return withProgressor(ctx, func(runCtx context.Context, progressor *progress.Progressor) (err error) {
		hash, err := progressor.JumpBlocks(runCtx, count)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "Created %d blocks, last block is %s\n", count, hash)
		return nil
	})
}

func waitSessionsAction(ctx *cli.Context) (err error) {
	count := uint32(ctx.Uint(CountFlag.Name))
	return withProgressor(ctx, func(runCtx context.Context, progressor *progress.Progressor) (err error) {
		hash, ok, err := progressor.WaitSessions(runCtx, count, nil)
		return sessionReached(ctx, hash, ok, err)
	})
}

func sessionReached(ctx *cli.Context, hash common.Hash, ok bool, err error) error {
	switch {
	case err != nil:
		return err
	case !ok:
		return ErrSessionPassed
	}
	fmt.Fprintf(ctx.App.Writer, "Session reached at block %s\n", hash)
	return nil
}

// withProgressor connects to the node and runs f with a progressor for it,
// serving the progression metrics if --metrics-address is set.
func withProgressor(ctx *cli.Context,
	f func(runCtx context.Context, progressor *progress.Progressor) error) (err error) {
	settings := progress.Settings{}
	if ctx.IsSet(PollIntervalFlag.Name) {
		pollInterval := ctx.Duration(PollIntervalFlag.Name)
		settings.PollInterval = &pollInterval
	}

	if address := ctx.String(MetricsAddressFlag.Name); address != "" {
		registry := prometheus.NewRegistry()
		settings.Metrics, err = metrics.NewPrometheus(registry)
		if err != nil {
			return err
		}

		server := metrics.NewServer(address, registry)
		err = server.Start()
		if err != nil {
			return err
		}
		defer func() {
			stopErr := server.Stop()
			if err == nil {
				err = stopErr
			}
		}()
	}

	return withClient(ctx, func(runCtx context.Context, client *node.Client) error {
		return f(runCtx, progress.New(client, settings))
	})
}
