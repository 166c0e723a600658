// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package fakenode implements an in-process JSON-RPC node serving
// the subset of the Substrate RPC API used by the tooling, over
// websocket and http. It simulates a manual seal development node.
package fakenode

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/gorilla/websocket"
	"golang.org/x/crypto/blake2b"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "fakenode"))

// Handler handles a JSON-RPC method call. Returning an error
// makes the node answer with a JSON-RPC error object.
type Handler func(params []json.RawMessage) (result interface{}, err error)

// Node is an in-process fake node.
type Node struct {
	server   *httptest.Server
	upgrader websocket.Upgrader

	mutex            sync.Mutex
	handlers         map[string]Handler
	calls            map[string]int
	blockNumber      uint64
	blocksPerSession uint64
	storage          map[string]string
	nonces           map[string]uint32
	extrinsics       []string
	metadata         string
}

// Settings for the fake node.
type Settings struct {
	// BlockNumber is the initial best block number.
	BlockNumber uint64
	// BlocksPerSession defaults to 10.
	BlocksPerSession uint64
	// MetadataHex is the hex encoded runtime metadata served
	// by state_getMetadata. If empty, the method returns an error.
	MetadataHex string
}

// New creates and starts a fake node.
func New(settings Settings) *Node {
	if settings.BlocksPerSession == 0 {
		settings.BlocksPerSession = 10
	}

	node := &Node{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		calls:            make(map[string]int),
		blockNumber:      settings.BlockNumber,
		blocksPerSession: settings.BlocksPerSession,
		storage:          make(map[string]string),
		nonces:           make(map[string]uint32),
		metadata:         settings.MetadataHex,
	}

	node.handlers = map[string]Handler{
		"chain_getBlockHash":      node.getBlockHash,
		"chain_getHeader":         node.getHeader,
		"chain_getFinalizedHead":  node.getFinalizedHead,
		"engine_createBlock":      node.createBlock,
		"state_getStorage":        node.getStorage,
		"state_getMetadata":       node.getMetadata,
		"state_getRuntimeVersion": node.getRuntimeVersion,
		"system_accountNextIndex": node.accountNextIndex,
		"author_submitExtrinsic":  node.submitExtrinsic,
	}

	node.server = httptest.NewServer(http.HandlerFunc(node.serveHTTP))
	return node
}

// URL returns the websocket URL of the node.
func (n *Node) URL() string {
	return "ws" + strings.TrimPrefix(n.server.URL, "http")
}

// HTTPURL returns the http URL of the node.
func (n *Node) HTTPURL() string {
	return n.server.URL
}

// Close stops the node and closes all its connections.
func (n *Node) Close() {
	n.server.CloseClientConnections()
	n.server.Close()
}

// Handle sets the handler for a method, replacing any existing one.
func (n *Node) Handle(method string, handler Handler) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.handlers[method] = handler
}

// Calls returns how many times the method was called.
func (n *Node) Calls(method string) int {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.calls[method]
}

// BlockNumber returns the current best block number.
func (n *Node) BlockNumber() uint64 {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.blockNumber
}

// SetStorage sets the value at a storage key, both hex encoded.
func (n *Node) SetStorage(key, value []byte) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.storage[common.BytesToHex(key)] = common.BytesToHex(value)
}

// SetNonce sets the next nonce of an SS58 address.
func (n *Node) SetNonce(address string, nonce uint32) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.nonces[address] = nonce
}

// Extrinsics returns the hex encoded extrinsics submitted.
func (n *Node) Extrinsics() []string {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	extrinsics := make([]string, len(n.extrinsics))
	copy(extrinsics, n.extrinsics)
	return extrinsics
}

// BlockHash returns the hash of the block with the given number.
func BlockHash(number uint64) common.Hash {
	encoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(encoded, number)
	return common.Hash(blake2b.Sum256(encoded))
}

type request struct {
	Version string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type response struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *responseError  `json:"error,omitempty"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// nullResult is marshalled as JSON null, since a nil
// result is omitted from the response.
type nullResult struct{}

func (nullResult) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (n *Node) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		n.serveWebsocket(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	responseData, err := n.handleMessage(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(responseData)
}

func (n *Node) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := n.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warnf("cannot upgrade connection: %s", err)
		return
	}
	defer conn.Close()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) &&
				!errors.Is(err, io.EOF) {
				logger.Debugf("websocket read failed: %s", err)
			}
			return
		}

		responseData, err := n.handleMessage(data)
		if err != nil {
			logger.Debugf("cannot handle message: %s", err)
			return
		}

		err = conn.WriteMessage(messageType, responseData)
		if err != nil {
			logger.Debugf("websocket write failed: %s", err)
			return
		}
	}
}

// handleMessage handles a single request or a batch of requests.
func (n *Node) handleMessage(data []byte) (responseData []byte, err error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var requests []request
		err = json.Unmarshal(data, &requests)
		if err != nil {
			return nil, fmt.Errorf("decoding batch request: %w", err)
		}

		responses := make([]response, len(requests))
		for i, req := range requests {
			responses[i] = n.handleRequest(req)
		}
		return json.Marshal(responses)
	}

	var req request
	err = json.Unmarshal(data, &req)
	if err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	return json.Marshal(n.handleRequest(req))
}

func (n *Node) handleRequest(req request) response {
	n.mutex.Lock()
	handler, ok := n.handlers[req.Method]
	n.calls[req.Method]++
	n.mutex.Unlock()

	resp := response{Version: "2.0", ID: req.ID}
	if !ok {
		resp.Error = &responseError{
			Code:    -32601,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		}
		return resp
	}

	result, err := handler(req.Params)
	if err != nil {
		resp.Error = &responseError{Code: -32000, Message: err.Error()}
		return resp
	}

	if result == nil {
		result = nullResult{}
	}
	resp.Result = result
	return resp
}
