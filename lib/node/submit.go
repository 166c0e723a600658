// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

var ErrNoCall = errors.New("no call to submit")

// Call is a runtime call identified by its "Pallet.call_name"
// name and its arguments, to be resolved against the runtime metadata.
// An argument can itself be a Call, for calls taking calls as arguments
// such as Sudo.sudo or Utility.batch_all.
type Call struct {
	Name string
	Args []interface{}
}

// NewCall creates a call with the given name and arguments.
func NewCall(name string, args ...interface{}) Call {
	return Call{Name: name, Args: args}
}

// String returns the call name with its nested calls and scalar arguments.
// Other arguments are shown by their type only.
func (c Call) String() string {
	s := c.Name + "("
	for i, arg := range c.Args {
		if i > 0 {
			s += ", "
		}
		switch value := arg.(type) {
		case Call:
			s += value.String()
		case []Call:
			s += "["
			for j, call := range value {
				if j > 0 {
					s += ", "
				}
				s += call.String()
			}
			s += "]"
		case uint32, uint64, bool, string:
			s += fmt.Sprintf("%v", value)
		default:
			s += fmt.Sprintf("%T", value)
		}
	}
	return s + ")"
}

// Resolve builds the SCALE encodable runtime call from the metadata.
func (c Call) Resolve(meta *types.Metadata) (call types.Call, err error) {
	args := make([]interface{}, len(c.Args))
	for i, arg := range c.Args {
		switch value := arg.(type) {
		case Call:
			args[i], err = value.Resolve(meta)
			if err != nil {
				return call, err
			}
		case []Call:
			calls := make([]types.Call, len(value))
			for j := range value {
				calls[j], err = value[j].Resolve(meta)
				if err != nil {
					return call, err
				}
			}
			args[i] = calls
		default:
			args[i] = arg
		}
	}

	call, err = types.NewCall(meta, c.Name, args...)
	if err != nil {
		return call, fmt.Errorf("creating call %s: %w", c.Name, err)
	}
	return call, nil
}

// Metadata returns the latest runtime metadata of the node.
func (c *Client) Metadata(ctx context.Context) (meta *types.Metadata, err error) {
	var metadataHex string
	err = c.call(ctx, &metadataHex, "state_getMetadata")
	if err != nil {
		return nil, err
	}

	meta = new(types.Metadata)
	err = codec.DecodeFromHex(metadataHex, meta)
	if err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}
	return meta, nil
}

// Submit signs the calls with the signer and submits them as a single
// extrinsic, batched with Utility.batch_all if there is more than one.
// It returns the hash of the extrinsic submitted.
func (c *Client) Submit(ctx context.Context, signer signature.KeyringPair, calls ...Call) (
	hash common.Hash, err error) {
	var toSubmit Call
	switch len(calls) {
	case 0:
		return hash, ErrNoCall
	case 1:
		toSubmit = calls[0]
	default:
		toSubmit = NewCall("Utility.batch_all", calls)
	}

	meta, err := c.Metadata(ctx)
	if err != nil {
		return hash, fmt.Errorf("getting metadata: %w", err)
	}

	call, err := toSubmit.Resolve(meta)
	if err != nil {
		return hash, err
	}

	var genesisHash common.Hash
	err = c.call(ctx, &genesisHash, "chain_getBlockHash", 0)
	if err != nil {
		return hash, fmt.Errorf("getting genesis hash: %w", err)
	}

	var runtimeVersion types.RuntimeVersion
	err = c.call(ctx, &runtimeVersion, "state_getRuntimeVersion")
	if err != nil {
		return hash, fmt.Errorf("getting runtime version: %w", err)
	}

	var nonce uint32
	err = c.call(ctx, &nonce, "system_accountNextIndex", signer.Address)
	if err != nil {
		return hash, fmt.Errorf("getting nonce: %w", err)
	}

	extrinsic := types.NewExtrinsic(call)
	options := types.SignatureOptions{
		BlockHash:          types.Hash(genesisHash),
		Era:                types.ExtrinsicEra{IsMortalEra: false},
		GenesisHash:        types.Hash(genesisHash),
		Nonce:              types.NewUCompactFromUInt(uint64(nonce)),
		SpecVersion:        runtimeVersion.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: runtimeVersion.TransactionVersion,
	}

	err = extrinsic.Sign(signer, options)
	if err != nil {
		return hash, fmt.Errorf("signing extrinsic: %w", err)
	}

	extrinsicHex, err := codec.EncodeToHex(extrinsic)
	if err != nil {
		return hash, fmt.Errorf("encoding extrinsic: %w", err)
	}

	err = c.call(ctx, &hash, "author_submitExtrinsic", extrinsicHex)
	if err != nil {
		return hash, err
	}

	logger.Infof("submitted %s with nonce %d in extrinsic %s", toSubmit, nonce, hash)
	return hash, nil
}
