// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/chainspec"
	"github.com/ChainSafe/tanssi-tools/lib/node"
	"github.com/ChainSafe/tanssi-tools/lib/registrar"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/urfave/cli"
)

func registerAction(ctx *cli.Context) (err error) {
	path, err := chainFlag(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "Reading chain spec from: %s\n", path)
	spec, err := chainspec.Read(path)
	if err != nil {
		return err
	}

	signer, err := getSigner(ctx)
	if err != nil {
		return err
	}

	return withClient(ctx, func(runCtx context.Context, client *node.Client) (err error) {
		var firstProfileID uint64
		if len(spec.BootNodes) > 0 {
			firstProfileID, err = client.NextProfileID(runCtx)
			if err != nil {
				return err
			}
		}

		calls, err := registrar.Register(spec, registrar.RegisterOptions{
			Parathread:     ctx.Bool(ParathreadFlag.Name),
			FirstProfileID: firstProfileID,
		})
		if err != nil {
			return err
		}

		if len(spec.BootNodes) == 0 {
			fmt.Fprint(ctx.App.Writer, "Sending register transaction (register + markValidForCollating)... ")
		} else {
			fmt.Fprint(ctx.App.Writer, "Sending register transaction "+
				"(register + createProfile + startAssignment + markValidForCollating)... ")
		}
		return submit(runCtx, ctx, client, signer, calls...)
	})
}

func registerStarlightAction(ctx *cli.Context) (err error) {
	path, err := chainFlag(ctx)
	if err != nil {
		return err
	}

	genesisHead, err := genesisStateFlag(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "Reading chain spec from: %s\n", path)
	spec, err := chainspec.Read(path)
	if err != nil {
		return err
	}

	signer, err := getSigner(ctx)
	if err != nil {
		return err
	}

	return withClient(ctx, func(runCtx context.Context, client *node.Client) (err error) {
		var firstProfileID uint64
		if len(spec.BootNodes) > 0 {
			firstProfileID, err = client.NextProfileID(runCtx)
			if err != nil {
				return err
			}
		}

		calls, err := registrar.RegisterStarlight(spec, genesisHead, registrar.RegisterOptions{
			Parathread:     ctx.Bool(ParathreadFlag.Name),
			FirstProfileID: firstProfileID,
		})
		if err != nil {
			return err
		}

		if len(spec.BootNodes) == 0 {
			fmt.Fprint(ctx.App.Writer, "Sending register transaction (register + addTrustedValidationCode)... ")
		} else {
			fmt.Fprint(ctx.App.Writer, "Sending register transaction "+
				"(register + createProfile + startAssignment + addTrustedValidationCode)... ")
		}
		return submit(runCtx, ctx, client, signer, calls...)
	})
}

func markValidAction(ctx *cli.Context) (err error) {
	return sudoParaAction(ctx, "markValidForCollating", registrar.Pallet.MarkValidForCollating)
}

func deregisterAction(ctx *cli.Context) (err error) {
	return sudoParaAction(ctx, "deregister", registrar.Pallet.Deregister)
}

func pauseAction(ctx *cli.Context) (err error) {
	return sudoParaAction(ctx, "pauseContainerChain", registrar.Pallet.PauseContainerChain)
}

func sudoParaAction(ctx *cli.Context, description string,
	newCall func(pallet registrar.Pallet, paraID uint32) node.Call) (err error) {
	paraID, err := paraIDFlag(ctx)
	if err != nil {
		return err
	}

	pallet := registrar.PalletRegistrar
	if ctx.Bool(StarlightFlag.Name) {
		pallet = registrar.PalletContainerRegistrar
	}

	signer, err := getSigner(ctx)
	if err != nil {
		return err
	}

	return withClient(ctx, func(runCtx context.Context, client *node.Client) (err error) {
		fmt.Fprintf(ctx.App.Writer, "Sending %s transaction for para id %d... ", description, paraID)
		return submit(runCtx, ctx, client, signer, newCall(pallet, paraID))
	})
}

func setBootNodesAction(ctx *cli.Context) (err error) {
	paraID, err := paraIDFlag(ctx)
	if err != nil {
		return err
	}
	bootNodes := ctx.StringSlice(BootNodeFlag.Name)

	signer, err := getSigner(ctx)
	if err != nil {
		return err
	}

	return withClient(ctx, func(runCtx context.Context, client *node.Client) (err error) {
		var firstProfileID uint64
		if len(bootNodes) > 0 {
			firstProfileID, err = client.NextProfileID(runCtx)
			if err != nil {
				return err
			}
		}

		markValid := false
		if ctx.Bool(MarkValidFlag.Name) {
			markValid, err = client.PendingVerification(runCtx, paraID)
			if err != nil {
				return err
			}
			if !markValid {
				logger.Infof("para id %d is not pending verification, not marking it as valid", paraID)
			}
		}

		calls, err := registrar.SetBootNodes(paraID, bootNodes, firstProfileID, markValid)
		if err != nil {
			return err
		}

		fmt.Fprintf(ctx.App.Writer, "Sending setBootNodes transaction for para id %d... ", paraID)
		return submit(runCtx, ctx, client, signer, calls...)
	})
}

// withClient connects to the node and runs f with the command context.
func withClient(ctx *cli.Context, f func(runCtx context.Context, client *node.Client) error) (err error) {
	runCtx, cancel := commandContext(ctx)
	defer cancel()

	client, err := connect(runCtx, ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return f(runCtx, client)
}

func submit(runCtx context.Context, ctx *cli.Context, client *node.Client,
	signer signature.KeyringPair, calls ...node.Call) (err error) {
	hash, err := client.Submit(runCtx, signer, calls...)
	if err != nil {
		fmt.Fprintln(ctx.App.Writer)
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "%s\nDone ✅\n", hash)
	return nil
}
