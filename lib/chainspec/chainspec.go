// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chainspec

// ChainSpec is a raw container chain specification, as produced by
// `build-spec --raw` and consumed by the registration tooling.
type ChainSpec struct {
	Name               string             `json:"name"`
	ID                 string             `json:"id"`
	ChainType          string             `json:"chainType"`
	ForkID             *string            `json:"forkId"`
	BootNodes          []string           `json:"bootNodes"`
	TelemetryEndpoints TelemetryEndpoints `json:"telemetryEndpoints"`
	ProtocolID         string             `json:"protocolId"`
	Properties         Properties         `json:"properties"`
	RelayChain         string             `json:"relay_chain"`
	ParaID             uint32             `json:"para_id"`
	CodeSubstitutes    map[string]string  `json:"codeSubstitutes"`
	Genesis            Genesis            `json:"genesis"`
}

// Properties holds the token metadata of the chain.
// Token symbol, ss58 format and token decimals are required
// to build the on-chain genesis data; isEthereum is optional.
type Properties struct {
	IsEthereum    *bool   `json:"isEthereum,omitempty"`
	SS58Format    *uint32 `json:"ss58Format" validate:"required"`
	TokenDecimals *uint32 `json:"tokenDecimals" validate:"required"`
	TokenSymbol   *string `json:"tokenSymbol" validate:"required"`
}

// Genesis holds the genesis state of the chain.
type Genesis struct {
	Raw RawGenesis `json:"raw"`
}

// RawGenesis is the genesis state as hex encoded storage
// key value pairs.
type RawGenesis struct {
	Top             map[string]string            `json:"top"`
	ChildrenDefault map[string]map[string]string `json:"childrenDefault"`
}

// Well known chain types.
const (
	ChainTypeDevelopment = "Development"
	ChainTypeLocal       = "Local"
	ChainTypeLive        = "Live"
)

// CodeKey is the well known storage key of the runtime code, ":code".
const CodeKey = "0x3a636f6465"
