// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
	"github.com/urfave/cli"
)

var (
	ErrURLAndNetwork  = errors.New("--url and --network cannot be used together")
	ErrNoEndpoint     = errors.New("no node endpoint given, use --url or --network")
	ErrNetworkUnknown = errors.New("network is unknown")
	ErrConfigInvalid  = errors.New("configuration is invalid")
)

// Config is the TOML configuration of the tool.
type Config struct {
	Networks map[string]Network `toml:"networks" validate:"dive"`
}

// Network is a named network the tool can connect to.
type Network struct {
	URL string `toml:"url" validate:"required,url"`
}

// defaultConfig returns the built-in networks.
func defaultConfig() Config {
	return Config{
		Networks: map[string]Network{
			"dancelight": {URL: "wss://dancelight-rpc.polkadot.io:443"},
			"starlight":  {URL: "wss://starlight-rpc.polkadot.io:443"},
			"local":      {URL: "ws://127.0.0.1:9947"},
		},
	}
}

// loadConfig reads the TOML configuration file at path and merges
// its networks over the built-in ones.
func loadConfig(path string) (cfg Config, err error) {
	cfg = defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("reading configuration file: %w", err)
	}

	var fileConfig Config
	err = toml.Unmarshal(data, &fileConfig)
	if err != nil {
		return cfg, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}

	err = validator.New().Struct(fileConfig)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrConfigInvalid, err)
	}

	for name, network := range fileConfig.Networks {
		cfg.Networks[name] = network
	}
	return cfg, nil
}

// endpointURL returns the node URL from the --url flag, or from the
// network named by the --network flag.
func endpointURL(ctx *cli.Context) (url string, err error) {
	url = ctx.GlobalString(URLFlag.Name)
	networkName := ctx.GlobalString(NetworkFlag.Name)

	switch {
	case url != "" && networkName != "":
		return "", ErrURLAndNetwork
	case url != "":
		return url, nil
	case networkName == "":
		return "", ErrNoEndpoint
	}

	cfg, err := loadConfig(ctx.GlobalString(ConfigFlag.Name))
	if err != nil {
		return "", err
	}

	network, ok := cfg.Networks[networkName]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNetworkUnknown, networkName)
	}
	return network.URL, nil
}
