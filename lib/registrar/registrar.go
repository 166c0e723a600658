// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package registrar

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/chainspec"
	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/ChainSafe/tanssi-tools/lib/genesisdata"
	"github.com/ChainSafe/tanssi-tools/lib/node"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var (
	ErrNoBootNode = errors.New("no boot node given")
	ErrNoHeadData = errors.New("no genesis head data given")
)

// Pallet is the pallet registering container chains on a chain.
type Pallet string

const (
	// PalletRegistrar is the registrar of the Tanssi orchestrator chain.
	PalletRegistrar Pallet = "Registrar"
	// PalletContainerRegistrar is the registrar of a Starlight relay chain.
	PalletContainerRegistrar Pallet = "ContainerRegistrar"
)

func (p Pallet) call(name string, args ...interface{}) node.Call {
	return node.NewCall(string(p)+"."+name, args...)
}

// RegisterOptions are options for the registration of a container chain.
type RegisterOptions struct {
	// Parathread registers the chain as a parathread producing
	// a block every relay chain slot instead of a parachain.
	Parathread bool
	// FirstProfileID is the id assigned to the first boot node profile
	// created, as read from DataPreservers.NextProfileId.
	FirstProfileID uint64
}

// Register returns the calls registering the container chain from its raw
// chain spec: the registration itself, a data preserver profile with its
// assignment for each boot node of the chain spec, and finally marking
// the chain as valid for collating.
func Register(spec *chainspec.ChainSpec, options RegisterOptions) (calls []node.Call, err error) {
	calls, err = register(PalletRegistrar, spec, types.NewOptionBytesEmpty(), options)
	if err != nil {
		return nil, err
	}

	calls = append(calls, MarkValidForCollating(spec.ParaID))
	return calls, nil
}

// RegisterStarlight returns the calls registering the container chain on a
// Starlight relay chain with the given genesis head data, creating its boot
// node profiles and marking its runtime code as trusted validation code.
// The chain is not marked as valid for collating: it must first be onboarded
// by the relay chain, two sessions later.
func RegisterStarlight(spec *chainspec.ChainSpec, genesisHead []byte, options RegisterOptions) (
	calls []node.Call, err error) {
	if len(genesisHead) == 0 {
		return nil, ErrNoHeadData
	}

	codeHex, ok := spec.Genesis.Raw.Top[chainspec.CodeKey]
	if !ok {
		return nil, chainspec.ErrNoRuntimeCode
	}
	code, err := common.HexToBytes(codeHex)
	if err != nil {
		return nil, fmt.Errorf("decoding runtime code: %w", err)
	}

	calls, err = register(PalletContainerRegistrar, spec, types.NewOptionBytes(genesisHead), options)
	if err != nil {
		return nil, err
	}

	calls = append(calls, AddTrustedValidationCode(code))
	return calls, nil
}

func register(pallet Pallet, spec *chainspec.ChainSpec, headData types.OptionBytes,
	options RegisterOptions) (calls []node.Call, err error) {
	gd, err := genesisdata.FromChainSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("encoding genesis data: %w", err)
	}

	var registerCall node.Call
	if options.Parathread {
		slotFrequency := SlotFrequency{Min: 1, Max: 1}
		registerCall = pallet.call("register_parathread",
			spec.ParaID, slotFrequency, gd, headData)
	} else {
		registerCall = pallet.call("register", spec.ParaID, gd, headData)
	}
	calls = append(calls, registerCall)

	bootNodeCalls, err := bootNodeCalls(spec.ParaID, spec.BootNodes, options.FirstProfileID)
	if err != nil {
		return nil, err
	}
	return append(calls, bootNodeCalls...), nil
}

// SetBootNodes returns the calls creating a data preserver profile for each
// boot node and assigning it to the para id. If markValid is true, the calls
// end with marking the chain as valid for collating.
func SetBootNodes(paraID uint32, bootNodes []string, firstProfileID uint64, markValid bool) (
	calls []node.Call, err error) {
	if len(bootNodes) == 0 && !markValid {
		return nil, ErrNoBootNode
	}

	calls, err = bootNodeCalls(paraID, bootNodes, firstProfileID)
	if err != nil {
		return nil, err
	}

	if markValid {
		calls = append(calls, MarkValidForCollating(paraID))
	}
	return calls, nil
}

func bootNodeCalls(paraID uint32, bootNodes []string, firstProfileID uint64) (
	calls []node.Call, err error) {
	profileID := firstProfileID
	for _, bootNode := range bootNodes {
		_, err = chainspec.ValidateBootNode(bootNode)
		if err != nil {
			return nil, err
		}

		calls = append(calls,
			node.NewCall("DataPreservers.create_profile", NewBootNodeProfile(bootNode)),
			sudo(node.NewCall("DataPreservers.force_start_assignment",
				profileID, paraID, AssignmentWitnessFree)),
		)
		profileID++
	}
	return calls, nil
}

// MarkValidForCollating returns the sudo call marking
// the para id as valid for collating.
func MarkValidForCollating(paraID uint32) node.Call {
	return PalletRegistrar.MarkValidForCollating(paraID)
}

// Deregister returns the sudo call deregistering the para id.
func Deregister(paraID uint32) node.Call {
	return PalletRegistrar.Deregister(paraID)
}

// PauseContainerChain returns the sudo call pausing the container chain
// from collating, keeping its boot nodes and configuration.
func PauseContainerChain(paraID uint32) node.Call {
	return PalletRegistrar.PauseContainerChain(paraID)
}

// MarkValidForCollating returns the sudo call of the pallet marking
// the para id as valid for collating.
func (p Pallet) MarkValidForCollating(paraID uint32) node.Call {
	return sudo(p.call("mark_valid_for_collating", paraID))
}

// Deregister returns the sudo call of the pallet deregistering the para id.
func (p Pallet) Deregister(paraID uint32) node.Call {
	return sudo(p.call("deregister", paraID))
}

// PauseContainerChain returns the sudo call of the pallet pausing the container chain.
func (p Pallet) PauseContainerChain(paraID uint32) node.Call {
	return sudo(p.call("pause_container_chain", paraID))
}

// AddTrustedValidationCode returns the sudo call adding the runtime code
// to the trusted validation code of the relay chain.
func AddTrustedValidationCode(code []byte) node.Call {
	return sudo(node.NewCall("Paras.add_trusted_validation_code", code))
}

func sudo(call node.Call) node.Call {
	return node.NewCall("Sudo.sudo", call)
}
