// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/ChainSafe/tanssi-tools/lib/node"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/urfave/cli"
	terminal "golang.org/x/term"
)

var (
	ErrParaIDMissing = errors.New("--para-id is required")
	ErrChainMissing  = errors.New("--chain is required")
	ErrGenesisState  = errors.New("--genesis-state is required")
	ErrNotATerminal  = errors.New("standard input is not a terminal")
)

// setupLogger sets up the global logger.
func setupLogger(ctx *cli.Context) (level log.Level, err error) {
	if lvlToInt, err := strconv.Atoi(ctx.GlobalString(LogFlag.Name)); err == nil {
		level = log.Level(lvlToInt)
	} else if level, err = log.ParseLevel(ctx.GlobalString(LogFlag.Name)); err != nil {
		return 0, err
	}

	format := log.FormatPlain
	if file, ok := ctx.App.ErrWriter.(*os.File); ok && terminal.IsTerminal(int(file.Fd())) {
		format = log.FormatConsole
	}

	log.Patch(
		log.SetWriter(ctx.App.ErrWriter),
		log.SetFormat(format),
		log.SetLevel(level),
	)

	return level, nil
}

// commandContext returns a context canceled on interrupt signals
// and when the --timeout duration elapses, if set.
func commandContext(ctx *cli.Context) (context.Context, context.CancelFunc) {
	signalCtx, stopSignals := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)

	timeout := ctx.GlobalDuration(TimeoutFlag.Name)
	if timeout <= 0 {
		return signalCtx, stopSignals
	}

	timeoutCtx, cancel := context.WithTimeout(signalCtx, timeout)
	return timeoutCtx, func() {
		cancel()
		stopSignals()
	}
}

// connect connects to the node given by the --url or --network flags.
func connect(ctx context.Context, cliCtx *cli.Context) (client *node.Client, err error) {
	url, err := endpointURL(cliCtx)
	if err != nil {
		return nil, err
	}

	logger.Debugf("connecting to %s", url)
	return node.Connect(ctx, url)
}

// getSigner returns the signer from the --account-priv-key flag or its
// environment variable, prompting for the secret if neither is set.
func getSigner(ctx *cli.Context) (signer signature.KeyringPair, err error) {
	secret := ctx.String(AccountPrivKeyFlag.Name)
	if secret == "" {
		secret, err = promptSecret("Enter the secret of the signing account:")
		if err != nil {
			return signer, err
		}
	}

	signer, err = node.NewSigner(secret)
	if err != nil {
		return signer, fmt.Errorf("creating signer: %w", err)
	}
	logger.Debugf("signing with account %s", signer.Address)
	return signer, nil
}

// promptSecret prompts the user for a secret without echoing it.
func promptSecret(msg string) (secret string, err error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", fmt.Errorf("%w: set --%s or %s",
			ErrNotATerminal, AccountPrivKeyFlag.Name, AccountPrivKeyFlag.EnvVar)
	}

	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprint(os.Stderr, "> ")
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return string(password), nil
}

func paraIDFlag(ctx *cli.Context) (paraID uint32, err error) {
	if !ctx.IsSet(ParaIDFlag.Name) {
		return 0, ErrParaIDMissing
	}
	return uint32(ctx.Uint(ParaIDFlag.Name)), nil
}

// genesisStateFlag reads the hex encoded genesis head data
// from the file given by --genesis-state.
func genesisStateFlag(ctx *cli.Context) (genesisHead []byte, err error) {
	path := ctx.String(GenesisStateFlag.Name)
	if path == "" {
		return nil, ErrGenesisState
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading genesis state: %w", err)
	}

	genesisHead, err = common.HexToBytes(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("decoding genesis state %s: %w", path, err)
	}
	return genesisHead, nil
}

func chainFlag(ctx *cli.Context) (path string, err error) {
	path = ctx.String(ChainFlag.Name)
	if path == "" {
		return "", ErrChainMissing
	}
	return path, nil
}
