// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package progress

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/ChainSafe/tanssi-tools/lib/common"
)

func ptrTo[T any](value T) *T {
	return &value
}

func hashOf(blockNumber uint64) (hash common.Hash) {
	binary.BigEndian.PutUint64(hash[24:], blockNumber)
	return hash
}

// fakeChain is a chain creating blocks on demand, with a new
// session starting every blocksPerSession blocks.
type fakeChain struct {
	mutex            sync.Mutex
	blockNumber      uint64
	blocksPerSession uint64
	blocksCreated    int
}

func newFakeChain(blockNumber, blocksPerSession uint64) *fakeChain {
	return &fakeChain{
		blockNumber:      blockNumber,
		blocksPerSession: blocksPerSession,
	}
}

func (f *fakeChain) CurrentSessionIndex(context.Context) (uint32, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return uint32(f.blockNumber / f.blocksPerSession), nil
}

func (f *fakeChain) BlockNumber(context.Context) (uint64, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.blockNumber, nil
}

func (f *fakeChain) CreateBlock(ctx context.Context) (common.Hash, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.blockNumber++
	f.blocksCreated++
	return hashOf(f.blockNumber), nil
}

func (f *fakeChain) BestBlockHash(context.Context) (common.Hash, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return hashOf(f.blockNumber), nil
}
