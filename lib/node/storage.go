// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"context"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/ChainSafe/tanssi-tools/lib/genesisdata"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// RawStorage returns the raw value at the storage key, at the best block.
// The ok value is false if no value is stored at the key.
func (c *Client) RawStorage(ctx context.Context, key []byte) (value []byte, ok bool, err error) {
	var valueHex *string
	err = c.call(ctx, &valueHex, "state_getStorage", common.BytesToHex(key))
	if err != nil {
		return nil, false, err
	}

	if valueHex == nil {
		return nil, false, nil
	}

	value, err = common.HexToBytes(*valueHex)
	if err != nil {
		return nil, false, fmt.Errorf("decoding storage value: %w", err)
	}
	return value, true, nil
}

// Storage SCALE decodes the value at the storage key into target.
// The ok value is false if no value is stored at the key, in
// which case target is left unchanged.
func (c *Client) Storage(ctx context.Context, key []byte, target interface{}) (ok bool, err error) {
	value, ok, err := c.RawStorage(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	err = codec.Decode(value, target)
	if err != nil {
		return false, fmt.Errorf("decoding storage value at %s: %w", common.BytesToHex(key), err)
	}
	return true, nil
}

// CurrentSessionIndex returns the value of Session.CurrentIndex.
func (c *Client) CurrentSessionIndex(ctx context.Context) (index uint32, err error) {
	_, err = c.Storage(ctx, common.StorageValueKey("Session", "CurrentIndex"), &index)
	if err != nil {
		return 0, fmt.Errorf("getting current session index: %w", err)
	}
	return index, nil
}

// ParaGenesisData returns the genesis data registered for the para id.
// The ok value is false if the para id is not registered.
func (c *Client) ParaGenesisData(ctx context.Context, paraID uint32) (
	gd genesisdata.GenesisData, ok bool, err error) {
	key, err := common.Blake2128ConcatMapKey("Registrar", "ParaGenesisData", common.EncodeParaID(paraID))
	if err != nil {
		return gd, false, err
	}

	value, ok, err := c.RawStorage(ctx, key)
	if err != nil || !ok {
		return gd, false, err
	}

	gd, err = genesisdata.Decode(value)
	if err != nil {
		return gd, false, fmt.Errorf("para id %d: %w", paraID, err)
	}
	return gd, true, nil
}

// PendingVerification returns true if the para id is registered
// but not yet marked as valid for collating.
func (c *Client) PendingVerification(ctx context.Context, paraID uint32) (pending bool, err error) {
	key, err := common.Blake2128ConcatMapKey("Registrar", "PendingVerification", common.EncodeParaID(paraID))
	if err != nil {
		return false, err
	}

	_, pending, err = c.RawStorage(ctx, key)
	return pending, err
}

// NextProfileID returns the id the data preservers pallet assigns
// to the next profile created.
func (c *Client) NextProfileID(ctx context.Context) (id uint64, err error) {
	_, err = c.Storage(ctx, common.StorageValueKey("DataPreservers", "NextProfileId"), &id)
	if err != nil {
		return 0, fmt.Errorf("getting next profile id: %w", err)
	}
	return id, nil
}
