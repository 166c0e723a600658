// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package registrar

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var ErrVariantUnknown = errors.New("enum variant is unknown")

// SlotFrequency is how often a parathread produces blocks,
// in relay chain slots.
type SlotFrequency struct {
	Min uint32
	Max uint32
}

// Profile is a data preserver profile, here used to
// advertise a container chain boot node.
type Profile struct {
	URL               []byte
	ParaIDs           ParaIDsFilter
	Mode              ProfileMode
	AssignmentRequest ProviderRequest
}

// NewBootNodeProfile returns a free boot node profile serving any para id.
func NewBootNodeProfile(url string) Profile {
	return Profile{
		URL:               []byte(url),
		ParaIDs:           ParaIDsFilter{Kind: AnyParaID},
		Mode:              ProfileMode{},
		AssignmentRequest: ProviderRequestFree,
	}
}

// ParaIDsFilterKind is the variant of a para ids filter.
type ParaIDsFilterKind uint8

const (
	AnyParaID ParaIDsFilterKind = iota
	Whitelist
	Blacklist
)

// ParaIDsFilter restricts the para ids a profile can be assigned to.
// ParaIDs is only used for the whitelist and blacklist kinds.
type ParaIDsFilter struct {
	Kind    ParaIDsFilterKind
	ParaIDs []uint32
}

// Encode implements scale.Encodeable.
func (f ParaIDsFilter) Encode(encoder scale.Encoder) (err error) {
	err = encoder.PushByte(byte(f.Kind))
	if err != nil {
		return err
	}

	switch f.Kind {
	case AnyParaID:
		return nil
	case Whitelist, Blacklist:
		return encoder.Encode(f.ParaIDs)
	default:
		return fmt.Errorf("%w: para ids filter %d", ErrVariantUnknown, f.Kind)
	}
}

// Decode implements scale.Decodeable.
func (f *ParaIDsFilter) Decode(decoder scale.Decoder) (err error) {
	kind, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	f.Kind = ParaIDsFilterKind(kind)
	switch f.Kind {
	case AnyParaID:
		f.ParaIDs = nil
		return nil
	case Whitelist, Blacklist:
		return decoder.Decode(&f.ParaIDs)
	default:
		return fmt.Errorf("%w: para ids filter %d", ErrVariantUnknown, kind)
	}
}

// ProfileMode is either a boot node, the zero value, or an RPC node.
type ProfileMode struct {
	IsRPC                bool
	SupportsEthereumRPCs bool
}

// Encode implements scale.Encodeable.
func (m ProfileMode) Encode(encoder scale.Encoder) (err error) {
	if !m.IsRPC {
		return encoder.PushByte(0)
	}

	err = encoder.PushByte(1)
	if err != nil {
		return err
	}
	return encoder.Encode(m.SupportsEthereumRPCs)
}

// Decode implements scale.Decodeable.
func (m *ProfileMode) Decode(decoder scale.Decoder) (err error) {
	variant, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch variant {
	case 0:
		*m = ProfileMode{}
		return nil
	case 1:
		m.IsRPC = true
		return decoder.Decode(&m.SupportsEthereumRPCs)
	default:
		return fmt.Errorf("%w: profile mode %d", ErrVariantUnknown, variant)
	}
}

// ProviderRequest is what a data preserver asks for its service.
// Only free assignments are supported.
type ProviderRequest uint8

const ProviderRequestFree ProviderRequest = 0

// AssignmentWitness is the proof of payment given when starting
// an assignment. Only free assignments are supported.
type AssignmentWitness uint8

const AssignmentWitnessFree AssignmentWitness = 0
