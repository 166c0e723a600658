// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	_ "github.com/breml/rootcerts"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "main"))

var (
	registerCommand = cli.Command{
		Action:    registerAction,
		Name:      "register",
		Usage:     "Register a container chain from its raw chain spec",
		Flags:     registerFlags,
		Description: "The register command registers the container chain with sudo, creates a\n" +
			"\tdata preserver profile for each of its boot nodes and marks it as valid for collating.\n" +
			"\tUsage: tanssi-tools --url ws://127.0.0.1:9947 register --chain container-2000.json",
	}
	registerStarlightCommand = cli.Command{
		Action:    registerStarlightAction,
		Name:      "register-starlight",
		Usage:     "Register a container chain on a Starlight relay chain from its raw chain spec and genesis state",
		Flags:     registerStarlightFlags,
		Description: "The register-starlight command registers the container chain with its genesis head data,\n" +
			"\tcreates a data preserver profile for each of its boot nodes and adds its runtime code\n" +
			"\tas trusted validation code. The chain is not marked as valid for collating: run\n" +
			"\tmark-valid-for-collating --starlight once it is onboarded, two sessions later.\n" +
			"\tUsage: tanssi-tools --network starlight register-starlight --chain container-2000.json " +
			"--genesis-state genesis-state",
	}
	markValidCommand = cli.Command{
		Action: markValidAction,
		Name:   "mark-valid-for-collating",
		Usage:  "Mark a registered container chain as valid for collating",
		Flags:  sudoParaFlags,
	}
	setBootNodesCommand = cli.Command{
		Action: setBootNodesAction,
		Name:   "set-bootnodes",
		Usage:  "Create and assign a boot node data preserver profile for each boot node",
		Flags:  setBootNodesFlags,
	}
	deregisterCommand = cli.Command{
		Action: deregisterAction,
		Name:   "deregister",
		Usage:  "Deregister a container chain",
		Flags:  sudoParaFlags,
	}
	pauseCommand = cli.Command{
		Action: pauseAction,
		Name:   "pause-container-chain",
		Usage:  "Pause collating of a container chain",
		Flags:  sudoParaFlags,
	}
	genesisDataCommand = cli.Command{
		Action: genesisDataAction,
		Name:   "genesis-data",
		Usage:  "Print the genesis data encoded from a raw chain spec",
		Flags:  genesisDataFlags,
	}
	chainSpecCommand = cli.Command{
		Action: chainSpecAction,
		Name:   "chain-spec",
		Usage:  "Download the genesis data of a registered container chain as a raw chain spec",
		Flags:  chainSpecFlags,
	}
	verifyChainSpecCommand = cli.Command{
		Action: verifyChainSpecAction,
		Name:   "verify-chain-spec",
		Usage:  "Check a raw chain spec survives its conversion to genesis data and back",
		Flags:  verifyChainSpecFlags,
	}
	inspectCommand = cli.Command{
		Action: inspectAction,
		Name:   "inspect",
		Usage:  "Print a summary of a raw chain spec",
		Flags:  inspectFlags,
	}
	jumpSessionsCommand = cli.Command{
		Action: jumpSessionsAction,
		Name:   "jump-sessions",
		Usage:  "Create blocks on a manual seal node until --count sessions have passed",
		Flags:  jumpFlags,
	}
	jumpToSessionCommand = cli.Command{
		Action: jumpToSessionAction,
		Name:   "jump-to-session",
		Usage:  "Create blocks on a manual seal node until the --session index is reached",
		Flags:  jumpToSessionFlags,
	}
	jumpBlocksCommand = cli.Command{
		Action: jumpBlocksAction,
		Name:   "jump-blocks",
		Usage:  "Create --count blocks on a manual seal node",
		Flags:  jumpFlags,
	}
	waitSessionsCommand = cli.Command{
		Action: waitSessionsAction,
		Name:   "wait-sessions",
		Usage:  "Wait for --count sessions to pass on a node producing blocks on its own",
		Flags:  waitFlags,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tanssi-tools"
	app.Usage = "Tanssi container chain registration and block progression tool"
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		registerCommand,
		registerStarlightCommand,
		markValidCommand,
		setBootNodesCommand,
		deregisterCommand,
		pauseCommand,
		genesisDataCommand,
		chainSpecCommand,
		verifyChainSpecCommand,
		inspectCommand,
		jumpSessionsCommand,
		jumpToSessionCommand,
		jumpBlocksCommand,
		waitSessionsCommand,
	}
	app.ErrWriter = os.Stderr
	app.Before = func(ctx *cli.Context) error {
		_, err := setupLogger(ctx)
		return err
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
