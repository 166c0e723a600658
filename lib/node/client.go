// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/client"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "node"))

// ErrConnection is returned when the node cannot be reached.
var ErrConnection = errors.New("cannot connect to node")

type rpcClient interface {
	Call(result interface{}, method string, args ...interface{}) error
}

type contextCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// Client is a connection to a Substrate node.
// It is safe for concurrent use.
type Client struct {
	url string
	rpc rpcClient
}

// Connect connects to the node at the given websocket or http url.
func Connect(ctx context.Context, url string) (c *Client, err error) {
	type result struct {
		rpc client.Client
		err error
	}
	results := make(chan result, 1)
	go func() {
		rpc, err := client.Connect(url)
		results <- result{rpc: rpc, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			r := <-results
			if r.err == nil {
				(&Client{rpc: r.rpc}).Close()
			}
		}()
		return nil, fmt.Errorf("%w: %s: %s", ErrConnection, url, ctx.Err())
	case r := <-results:
		if r.err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrConnection, url, r.err)
		}
		logger.Debugf("connected to %s", url)
		return &Client{url: url, rpc: r.rpc}, nil
	}
}

// URL returns the url of the node.
func (c *Client) URL() string {
	return c.url
}

// Close closes the connection to the node.
func (c *Client) Close() {
	closer, ok := c.rpc.(interface{ Close() })
	if ok {
		closer.Close()
	}
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) (err error) {
	caller, ok := c.rpc.(contextCaller)
	if ok {
		err = caller.CallContext(ctx, result, method, args...)
	} else {
		err = ctx.Err()
		if err == nil {
			err = c.rpc.Call(result, method, args...)
		}
	}

	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	return nil
}

// BlockNumber returns the number of the best block.
func (c *Client) BlockNumber(ctx context.Context) (number uint64, err error) {
	var header types.Header
	err = c.call(ctx, &header, "chain_getHeader")
	if err != nil {
		return 0, err
	}
	return uint64(header.Number), nil
}

// BestBlockHash returns the hash of the best block.
func (c *Client) BestBlockHash(ctx context.Context) (hash common.Hash, err error) {
	err = c.call(ctx, &hash, "chain_getBlockHash")
	return hash, err
}

// BlockHash returns the hash of the block with the given number.
func (c *Client) BlockHash(ctx context.Context, number uint64) (hash common.Hash, err error) {
	err = c.call(ctx, &hash, "chain_getBlockHash", number)
	return hash, err
}

type createdBlock struct {
	Hash common.Hash `json:"hash"`
}

// CreateBlock creates and finalizes a new block on a node running
// with manual seal, and returns the hash of the new block.
func (c *Client) CreateBlock(ctx context.Context) (hash common.Hash, err error) {
	var created createdBlock
	err = c.call(ctx, &created, "engine_createBlock", true, true, nil)
	if err != nil {
		return hash, err
	}
	return created.Hash, nil
}
