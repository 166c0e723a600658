// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package fakenode

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/blake2b"
)

var (
	errMetadataUnavailable = errors.New("metadata is not available")
	errBlockNotFound       = errors.New("block not found")
	errMissingParameter    = errors.New("missing parameter")
)

var sessionCurrentIndexKey = common.BytesToHex(common.StorageValueKey("Session", "CurrentIndex"))

type header struct {
	ParentHash     common.Hash    `json:"parentHash"`
	Number         hexutil.Uint64 `json:"number"`
	StateRoot      common.Hash    `json:"stateRoot"`
	ExtrinsicsRoot common.Hash    `json:"extrinsicsRoot"`
	Digest         digest         `json:"digest"`
}

type digest struct {
	Logs []string `json:"logs"`
}

type createdBlock struct {
	Hash common.Hash `json:"hash"`
	Aux  importedAux `json:"aux"`
}

type importedAux struct {
	HeaderOnly                 bool `json:"header_only"`
	ClearJustificationRequests bool `json:"clear_justification_requests"`
	NeedsJustification         bool `json:"needs_justification"`
	BadJustification           bool `json:"bad_justification"`
	IsNewBest                  bool `json:"is_new_best"`
}

type runtimeVersion struct {
	SpecName           string        `json:"specName"`
	ImplName           string        `json:"implName"`
	AuthoringVersion   uint32        `json:"authoringVersion"`
	SpecVersion        uint32        `json:"specVersion"`
	ImplVersion        uint32        `json:"implVersion"`
	APIs               []interface{} `json:"apis"`
	TransactionVersion uint32        `json:"transactionVersion"`
	StateVersion       uint8         `json:"stateVersion"`
}

func (n *Node) newHeader(number uint64) header {
	var parentHash common.Hash
	if number > 0 {
		parentHash = BlockHash(number - 1)
	}
	return header{
		ParentHash: parentHash,
		Number:     hexutil.Uint64(number),
		Digest:     digest{Logs: []string{}},
	}
}

// blockNumberAt returns the number of the block with the hash given
// as the optional parameter at index, or the best block number.
func (n *Node) blockNumberAt(params []json.RawMessage, index int) (number uint64, err error) {
	n.mutex.Lock()
	best := n.blockNumber
	n.mutex.Unlock()

	if len(params) <= index || string(params[index]) == "null" {
		return best, nil
	}

	var hash common.Hash
	err = json.Unmarshal(params[index], &hash)
	if err != nil {
		return 0, fmt.Errorf("decoding block hash: %w", err)
	}

	for number = 0; number <= best; number++ {
		if BlockHash(number) == hash {
			return number, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", errBlockNotFound, hash)
}

func (n *Node) getBlockHash(params []json.RawMessage) (interface{}, error) {
	n.mutex.Lock()
	best := n.blockNumber
	n.mutex.Unlock()

	if len(params) == 0 || string(params[0]) == "null" {
		return BlockHash(best), nil
	}

	var number uint64
	err := json.Unmarshal(params[0], &number)
	if err != nil {
		return nil, fmt.Errorf("decoding block number: %w", err)
	}

	if number > best {
		return nil, nil
	}
	return BlockHash(number), nil
}

func (n *Node) getHeader(params []json.RawMessage) (interface{}, error) {
	number, err := n.blockNumberAt(params, 0)
	if err != nil {
		return nil, err
	}
	return n.newHeader(number), nil
}

func (n *Node) getFinalizedHead([]json.RawMessage) (interface{}, error) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return BlockHash(n.blockNumber), nil
}

func (n *Node) createBlock([]json.RawMessage) (interface{}, error) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.blockNumber++
	return createdBlock{
		Hash: BlockHash(n.blockNumber),
		Aux:  importedAux{IsNewBest: true},
	}, nil
}

func (n *Node) getStorage(params []json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: storage key", errMissingParameter)
	}

	var key string
	err := json.Unmarshal(params[0], &key)
	if err != nil {
		return nil, fmt.Errorf("decoding storage key: %w", err)
	}

	number, err := n.blockNumberAt(params, 1)
	if err != nil {
		return nil, err
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()

	if key == sessionCurrentIndexKey {
		encoded := make([]byte, 4)
		binary.LittleEndian.PutUint32(encoded, uint32(number/n.blocksPerSession))
		return common.BytesToHex(encoded), nil
	}

	value, ok := n.storage[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (n *Node) getMetadata([]json.RawMessage) (interface{}, error) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	if n.metadata == "" {
		return nil, errMetadataUnavailable
	}
	return n.metadata, nil
}

func (n *Node) getRuntimeVersion([]json.RawMessage) (interface{}, error) {
	return runtimeVersion{
		SpecName:           "dancebox",
		ImplName:           "dancebox",
		AuthoringVersion:   1,
		SpecVersion:        1000,
		APIs:               []interface{}{},
		TransactionVersion: 1,
		StateVersion:       1,
	}, nil
}

func (n *Node) accountNextIndex(params []json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: account", errMissingParameter)
	}

	var address string
	err := json.Unmarshal(params[0], &address)
	if err != nil {
		return nil, fmt.Errorf("decoding account: %w", err)
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.nonces[address], nil
}

func (n *Node) submitExtrinsic(params []json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: extrinsic", errMissingParameter)
	}

	var extrinsicHex string
	err := json.Unmarshal(params[0], &extrinsicHex)
	if err != nil {
		return nil, fmt.Errorf("decoding extrinsic: %w", err)
	}

	extrinsic, err := common.HexToBytes(extrinsicHex)
	if err != nil {
		return nil, fmt.Errorf("decoding extrinsic: %w", err)
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.extrinsics = append(n.extrinsics, extrinsicHex)
	return common.Hash(blake2b.Sum256(extrinsic)), nil
}
