// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package progress

import (
	"context"

	"github.com/ChainSafe/tanssi-tools/lib/common"
)

// Chain is the node the progressor drives and observes.
type Chain interface {
	CurrentSessionIndex(ctx context.Context) (index uint32, err error)
	BlockNumber(ctx context.Context) (number uint64, err error)
	CreateBlock(ctx context.Context) (hash common.Hash, err error)
	BestBlockHash(ctx context.Context) (hash common.Hash, err error)
}

// Metrics records the progression.
type Metrics interface {
	BlockCreated()
	JumpDone(outcome string)
	SessionObserved(index uint32)
	BlockObserved(number uint64)
}
