// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/chainspec"
	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/ChainSafe/tanssi-tools/lib/genesisdata"
	"github.com/ChainSafe/tanssi-tools/lib/node"
	"github.com/ChainSafe/tanssi-tools/lib/registrar"
	"github.com/qdm12/gotree"
	"github.com/urfave/cli"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

const (
	formatJSON  = "json"
	formatSCALE = "scale"
)

var (
	ErrFormatUnknown     = errors.New("format is unknown")
	ErrParaNotRegistered = errors.New("para id is not registered")
	ErrChainSpecMismatch = errors.New("chain spec differs after conversion to genesis data and back")
)

func genesisDataAction(ctx *cli.Context) (err error) {
	path, err := chainFlag(ctx)
	if err != nil {
		return err
	}

	spec, err := chainspec.Read(path)
	if err != nil {
		return err
	}

	gd, err := genesisdata.FromChainSpec(spec)
	if err != nil {
		return err
	}

	switch format := ctx.String(FormatFlag.Name); format {
	case formatJSON:
		data, err := json.MarshalIndent(gd, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding genesis data to JSON: %w", err)
		}
		fmt.Fprintln(ctx.App.Writer, string(data))
	case formatSCALE:
		encoded, err := genesisdata.Encode(gd)
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, common.BytesToHex(encoded))
	default:
		return fmt.Errorf("%w: %s", ErrFormatUnknown, format)
	}
	return nil
}

func chainSpecAction(ctx *cli.Context) (err error) {
	paraID, err := paraIDFlag(ctx)
	if err != nil {
		return err
	}

	var gd genesisdata.GenesisData
	var bootNodes []string
	err = withClient(ctx, func(runCtx context.Context, client *node.Client) (err error) {
		var ok bool
		gd, ok, err = client.ParaGenesisData(runCtx, paraID)
		if err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("%w: %d", ErrParaNotRegistered, paraID)
		}

		if ctx.Bool(FetchBootNodesFlag.Name) {
			bootNodes, err = registrar.BootNodes(runCtx, client, paraID)
			if err != nil {
				return err
			}
			logger.Debugf("found %d boot nodes for para id %d", len(bootNodes), paraID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	spec, err := genesisdata.ToChainSpec(gd, paraID,
		ctx.String(ChainTypeFlag.Name), ctx.String(RelayChainFlag.Name))
	if err != nil {
		return err
	}
	if bootNodes != nil {
		spec.BootNodes = bootNodes
	}

	output := ctx.String(OutputFlag.Name)
	if output != "" {
		err = chainspec.Write(output, spec)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "Chain spec of para id %d written to %s\n", paraID, output)
		return nil
	}

	data, err := chainspec.Marshal(spec)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(data)
	return err
}

func verifyChainSpecAction(ctx *cli.Context) (err error) {
	path, err := chainFlag(ctx)
	if err != nil {
		return err
	}

	spec, err := chainspec.Read(path)
	if err != nil {
		return err
	}

	chainType := spec.ChainType
	if ctx.IsSet(ChainTypeFlag.Name) {
		chainType = ctx.String(ChainTypeFlag.Name)
	}
	relayChain := spec.RelayChain
	if ctx.IsSet(RelayChainFlag.Name) {
		relayChain = ctx.String(RelayChainFlag.Name)
	}

	gd, err := genesisdata.FromChainSpec(spec)
	if err != nil {
		return err
	}

	converted, err := genesisdata.ToChainSpec(gd, spec.ParaID, chainType, relayChain)
	if err != nil {
		return err
	}

	if ctx.BoolT(KeepLossyFieldsFlag.Name) {
		converted.BootNodes = spec.BootNodes
		converted.TelemetryEndpoints = spec.TelemetryEndpoints
		converted.ProtocolID = spec.ProtocolID
		converted.CodeSubstitutes = spec.CodeSubstitutes
		converted.Genesis.Raw.ChildrenDefault = spec.Genesis.Raw.ChildrenDefault
	}

	diff, err := diffChainSpecs(spec, converted)
	if err != nil {
		return err
	}

	if diff == "" {
		fmt.Fprintf(ctx.App.Writer, "Chain spec %s round trips through genesis data ✅\n", path)
		return nil
	}

	fmt.Fprintln(ctx.App.Writer, diff)
	return ErrChainSpecMismatch
}

// diffChainSpecs returns a human readable JSON diff of the two chain specs,
// or the empty string if they are equal.
func diffChainSpecs(left, right *chainspec.ChainSpec) (diff string, err error) {
	leftJSON, err := chainspec.Marshal(left)
	if err != nil {
		return "", err
	}

	rightJSON, err := chainspec.Marshal(right)
	if err != nil {
		return "", err
	}

	delta, err := gojsondiff.New().Compare(leftJSON, rightJSON)
	if err != nil {
		return "", fmt.Errorf("comparing chain specs: %w", err)
	} else if !delta.Modified() {
		return "", nil
	}

	var leftObject map[string]interface{}
	err = json.Unmarshal(leftJSON, &leftObject)
	if err != nil {
		return "", fmt.Errorf("decoding chain spec JSON: %w", err)
	}

	asciiFormatter := formatter.NewAsciiFormatter(leftObject, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
	})
	diff, err = asciiFormatter.Format(delta)
	if err != nil {
		return "", fmt.Errorf("formatting chain specs diff: %w", err)
	}
	return diff, nil
}

func inspectAction(ctx *cli.Context) (err error) {
	path, err := chainFlag(ctx)
	if err != nil {
		return err
	}

	spec, err := chainspec.Read(path)
	if err != nil {
		return err
	}

	tree, err := inspectChainSpec(spec)
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.App.Writer, tree.String())
	return nil
}

func inspectChainSpec(spec *chainspec.ChainSpec) (tree *gotree.Node, err error) {
	tree = gotree.New("Chain spec %s", spec.Name)
	tree.Appendf("ID: %s", spec.ID)
	tree.Appendf("Chain type: %s", spec.ChainType)
	tree.Appendf("Para ID: %d", spec.ParaID)
	tree.Appendf("Relay chain: %s", spec.RelayChain)
	tree.Appendf("Protocol ID: %s", spec.ProtocolID)
	if spec.ForkID != nil {
		tree.Appendf("Fork ID: %s", *spec.ForkID)
	}

	err = chainspec.ValidateProperties(spec.Properties)
	if err != nil {
		return nil, err
	}
	properties := tree.Appendf("Properties")
	properties.Appendf("Token symbol: %s", *spec.Properties.TokenSymbol)
	properties.Appendf("SS58 format: %d", *spec.Properties.SS58Format)
	properties.Appendf("Token decimals: %d", *spec.Properties.TokenDecimals)
	isEthereum := spec.Properties.IsEthereum != nil && *spec.Properties.IsEthereum
	properties.Appendf("Is Ethereum: %t", isEthereum)

	bootNodes := tree.Appendf("Boot nodes: %d", len(spec.BootNodes))
	for _, bootNode := range spec.BootNodes {
		peerID, err := chainspec.ValidateBootNode(bootNode)
		if err != nil {
			bootNodes.Appendf("%s (invalid)", bootNode)
			continue
		}
		bootNodes.Appendf("%s (peer %s)", bootNode, peerID)
	}

	tree.Appendf("Genesis storage entries: %d", len(spec.Genesis.Raw.Top))

	code, compressed, err := chainspec.RuntimeCode(spec)
	switch {
	case errors.Is(err, chainspec.ErrNoRuntimeCode):
		tree.Appendf("Runtime code: none")
	case err != nil:
		return nil, err
	case compressed:
		tree.Appendf("Runtime code: %d bytes (zstd compressed)", len(code))
	default:
		tree.Appendf("Runtime code: %d bytes", len(code))
	}

	gd, err := genesisdata.FromChainSpec(spec)
	if err != nil {
		return nil, err
	}
	encoded, err := genesisdata.Encode(gd)
	if err != nil {
		return nil, err
	}
	tree.Appendf("Genesis data: %d bytes", len(encoded))

	return tree, nil
}
