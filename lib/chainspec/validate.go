// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chainspec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/go-playground/validator/v10"
	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/multiformats/go-multiaddr"
)

var (
	ErrStorageEntryInvalid = errors.New("genesis storage entry is invalid")
	ErrBootNodeInvalid     = errors.New("boot node is invalid")
	ErrPropertiesInvalid   = errors.New("properties are invalid")
)

var validate = validator.New()

// ValidateProperties checks that the token metadata needed
// for the on-chain genesis data is present.
func ValidateProperties(properties Properties) (err error) {
	err = validate.Struct(properties)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return fmt.Errorf("%w: %s is missing",
				ErrPropertiesInvalid, validationErrors[0].Field())
		}
		return fmt.Errorf("%w: %s", ErrPropertiesInvalid, err)
	}
	return nil
}

// ValidateBootNode checks the boot node is a multiaddress
// ending with a /p2p/<peer id> component and returns the peer id.
func ValidateBootNode(bootNode string) (peerID peer.ID, err error) {
	address, err := multiaddr.NewMultiaddr(bootNode)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrBootNodeInvalid, bootNode, err)
	}

	addrInfo, err := peer.AddrInfoFromP2pAddr(address)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrBootNodeInvalid, bootNode, err)
	}

	return addrInfo.ID, nil
}

// Validate checks the chain spec is well formed: every raw top
// storage key and value is 0x prefixed even length hex, the
// properties are complete and each boot node is a valid p2p multiaddress.
func Validate(spec *ChainSpec) (err error) {
	keys := make([]string, 0, len(spec.Genesis.Raw.Top))
	for key := range spec.Genesis.Raw.Top {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		_, err = common.HexToBytes(key)
		if err != nil {
			return fmt.Errorf("%w: key: %s", ErrStorageEntryInvalid, err)
		}

		_, err = common.HexToBytes(spec.Genesis.Raw.Top[key])
		if err != nil {
			return fmt.Errorf("%w: value of key %s: %s", ErrStorageEntryInvalid, key, err)
		}
	}

	err = ValidateProperties(spec.Properties)
	if err != nil {
		return err
	}

	for _, bootNode := range spec.BootNodes {
		_, err = ValidateBootNode(bootNode)
		if err != nil {
			return err
		}
	}

	return nil
}
