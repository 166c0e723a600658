// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package registrar

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// StorageReader reads SCALE decoded values from the chain storage.
type StorageReader interface {
	Storage(ctx context.Context, key []byte, target interface{}) (ok bool, err error)
}

// RegisteredProfile is a profile as stored by the data preservers pallet.
// The assignment following the profile is not decoded.
type RegisteredProfile struct {
	Account [32]byte
	Deposit types.U128
	Profile Profile
}

// BootNodes returns the urls of the boot node profiles assigned
// to the para id, in increasing profile id order.
// RPC profiles are skipped.
func BootNodes(ctx context.Context, reader StorageReader, paraID uint32) (bootNodes []string, err error) {
	key, err := common.Blake2128ConcatMapKey("DataPreservers", "Assignments", common.EncodeParaID(paraID))
	if err != nil {
		return nil, err
	}

	var profileIDs []uint64
	_, err = reader.Storage(ctx, key, &profileIDs)
	if err != nil {
		return nil, fmt.Errorf("getting profiles assigned to para id %d: %w", paraID, err)
	}

	bootNodes = make([]string, 0, len(profileIDs))
	for _, profileID := range profileIDs {
		encodedID := make([]byte, 8)
		binary.LittleEndian.PutUint64(encodedID, profileID)
		key, err = common.Blake2128ConcatMapKey("DataPreservers", "Profiles", encodedID)
		if err != nil {
			return nil, err
		}

		var registered RegisteredProfile
		ok, err := reader.Storage(ctx, key, &registered)
		if err != nil {
			return nil, fmt.Errorf("getting profile %d: %w", profileID, err)
		} else if !ok || registered.Profile.Mode.IsRPC {
			continue
		}
		bootNodes = append(bootNodes, string(registered.Profile.URL))
	}
	return bootNodes, nil
}
