// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/ChainSafe/tanssi-tools/lib/chainspec"
	"github.com/urfave/cli"
)

// Global flags
var (
	// URLFlag is the RPC endpoint of the node to connect to.
	URLFlag = cli.StringFlag{
		Name:  "url",
		Usage: "Websocket or http RPC endpoint of the node, e.g. ws://127.0.0.1:9947. Cannot be used with --network",
	}
	// NetworkFlag is a named network resolved with the configuration.
	NetworkFlag = cli.StringFlag{
		Name:  "network",
		Usage: "Named network to connect to, built-in or from the --config file. Cannot be used with --url",
	}
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file of named networks",
	}
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
		Value: "info",
	}
	// TimeoutFlag bounds each command. Zero means no timeout.
	TimeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "Timeout for the command, e.g. 2m. Disabled if zero",
	}
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Address to serve block progression Prometheus metrics on, e.g. localhost:9876. Disabled if empty",
	}
)

// Registration flags
var (
	ChainFlag = cli.StringFlag{
		Name:  "chain",
		Usage: "Path to the raw chain spec of the container chain",
	}
	// AccountPrivKeyFlag is the secret of the sudo account signing extrinsics.
	// If unset, the secret is prompted for.
	AccountPrivKeyFlag = cli.StringFlag{
		Name:   "account-priv-key",
		Usage:  "Secret of the signing account: hex seed, mnemonic or //Alice style development secret",
		EnvVar: "TANSSI_PRIV_KEY",
	}
	ParathreadFlag = cli.BoolFlag{
		Name:  "parathread",
		Usage: "Register the container chain as a parathread",
	}
	GenesisStateFlag = cli.StringFlag{
		Name:  "genesis-state",
		Usage: "Path to the hex encoded genesis head data of the container chain, as exported by export-genesis-state",
	}
	// StarlightFlag selects the ContainerRegistrar pallet of a Starlight relay chain.
	StarlightFlag = cli.BoolFlag{
		Name:  "starlight",
		Usage: "Send the call to the container registrar of a Starlight relay chain",
	}
	ParaIDFlag = cli.UintFlag{
		Name:  "para-id",
		Usage: "Para id of the container chain",
	}
	BootNodeFlag = cli.StringSliceFlag{
		Name:  "bootnode",
		Usage: "Boot node multiaddr of the container chain, can be given multiple times",
	}
	MarkValidFlag = cli.BoolFlag{
		Name:  "mark-valid-for-collating",
		Usage: "Also mark the container chain as valid for collating if it is pending verification",
	}
)

// Genesis data flags
var (
	FormatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "Output format of the genesis data: json or scale",
		Value: formatJSON,
	}
	ChainTypeFlag = cli.StringFlag{
		Name:  "chain-type",
		Usage: "Chain type of the chain spec: Development, Local or Live",
		Value: chainspec.ChainTypeLive,
	}
	RelayChainFlag = cli.StringFlag{
		Name:  "relay-chain",
		Usage: "Relay chain of the chain spec",
		Value: "rococo-local",
	}
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Path to write the chain spec to, standard output if empty",
	}
	FetchBootNodesFlag = cli.BoolFlag{
		Name:  "fetch-bootnodes",
		Usage: "Fill the chain spec boot nodes with the boot node profiles assigned to the para id",
	}
	KeepLossyFieldsFlag = cli.BoolTFlag{
		Name:  "keep-lossy-fields",
		Usage: "Copy the fields not stored on chain, such as boot nodes, before comparing",
	}
)

// Block progression flags
var (
	CountFlag = cli.UintFlag{
		Name:  "count",
		Usage: "Number of sessions or blocks",
		Value: 1,
	}
	SessionFlag = cli.UintFlag{
		Name:  "session",
		Usage: "Session index to reach",
	}
	PollIntervalFlag = cli.DurationFlag{
		Name:  "poll-interval",
		Usage: "Interval between session queries when waiting",
		Value: defaultPollInterval,
	}
)

var (
	globalFlags = []cli.Flag{
		URLFlag,
		NetworkFlag,
		ConfigFlag,
		LogFlag,
		TimeoutFlag,
	}

	registerFlags = []cli.Flag{
		ChainFlag,
		AccountPrivKeyFlag,
		ParathreadFlag,
	}

	registerStarlightFlags = []cli.Flag{
		ChainFlag,
		GenesisStateFlag,
		AccountPrivKeyFlag,
		ParathreadFlag,
	}

	sudoParaFlags = []cli.Flag{
		ParaIDFlag,
		AccountPrivKeyFlag,
		StarlightFlag,
	}

	setBootNodesFlags = []cli.Flag{
		ParaIDFlag,
		AccountPrivKeyFlag,
		BootNodeFlag,
		MarkValidFlag,
	}

	genesisDataFlags = []cli.Flag{
		ChainFlag,
		FormatFlag,
	}

	chainSpecFlags = []cli.Flag{
		ParaIDFlag,
		ChainTypeFlag,
		RelayChainFlag,
		OutputFlag,
		FetchBootNodesFlag,
	}

	verifyChainSpecFlags = []cli.Flag{
		ChainFlag,
		ChainTypeFlag,
		RelayChainFlag,
		KeepLossyFieldsFlag,
	}

	inspectFlags = []cli.Flag{
		ChainFlag,
	}

	jumpFlags = []cli.Flag{
		CountFlag,
		MetricsAddressFlag,
	}

	jumpToSessionFlags = []cli.Flag{
		SessionFlag,
		MetricsAddressFlag,
	}

	waitFlags = []cli.Flag{
		CountFlag,
		PollIntervalFlag,
		MetricsAddressFlag,
	}
)
