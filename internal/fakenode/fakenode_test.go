// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package fakenode

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Node_websocket(t *testing.T) {
	t.Parallel()

	node := New(Settings{BlockNumber: 9, BlocksPerSession: 5})
	t.Cleanup(node.Close)

	conn, _, err := websocket.DefaultDialer.Dial(node.URL(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	testCases := []struct {
		request  string
		response string
	}{
		{
			request: `{"jsonrpc":"2.0","id":1,"method":"state_getStorage",` +
				`"params":["0xcec5070d609dd3497f72bde07fc96ba072763800a36a99fdfc7c10f6415f6ee6"]}`,
			response: `{"jsonrpc":"2.0","id":1,"result":"0x01000000"}`,
		},
		{
			request: `{"jsonrpc":"2.0","id":2,"method":"engine_createBlock","params":[true,true,null]}`,
			response: `{"jsonrpc":"2.0","id":2,"result":{"hash":"` + BlockHash(10).String() + `",` +
				`"aux":{"header_only":false,"clear_justification_requests":false,` +
				`"needs_justification":false,"bad_justification":false,"is_new_best":true}}}`,
		},
		{
			request: `{"jsonrpc":"2.0","id":3,"method":"state_getStorage",` +
				`"params":["0xcec5070d609dd3497f72bde07fc96ba072763800a36a99fdfc7c10f6415f6ee6"]}`,
			response: `{"jsonrpc":"2.0","id":3,"result":"0x02000000"}`,
		},
		{
			request:  `{"jsonrpc":"2.0","id":4,"method":"state_getStorage","params":["0x00"]}`,
			response: `{"jsonrpc":"2.0","id":4,"result":null}`,
		},
		{
			request: `{"jsonrpc":"2.0","id":5,"method":"unknown_method","params":[]}`,
			response: `{"jsonrpc":"2.0","id":5,"error":{"code":-32601,` +
				`"message":"Method not found: unknown_method"}}`,
		},
	}

	for _, testCase := range testCases {
		err = conn.WriteMessage(websocket.TextMessage, []byte(testCase.request))
		require.NoError(t, err)

		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, testCase.response, string(data))
	}

	assert.Equal(t, uint64(10), node.BlockNumber())
	assert.Equal(t, 1, node.Calls("engine_createBlock"))
	assert.Equal(t, 3, node.Calls("state_getStorage"))
}

func Test_Node_httpBatch(t *testing.T) {
	t.Parallel()

	node := New(Settings{})
	t.Cleanup(node.Close)

	node.SetStorage([]byte{1, 2}, []byte{3})
	node.Handle("system_chain", func(params []json.RawMessage) (interface{}, error) {
		return nil, errors.New("chain is unavailable")
	})

	body := `[{"jsonrpc":"2.0","id":1,"method":"state_getStorage","params":["0x0102"]},` +
		`{"jsonrpc":"2.0","id":2,"method":"system_chain","params":[]}]`
	response, err := http.Post(node.HTTPURL(), "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	err = response.Body.Close()
	require.NoError(t, err)

	const expected = `[{"jsonrpc":"2.0","id":1,"result":"0x03"},` +
		`{"jsonrpc":"2.0","id":2,"error":{"code":-32000,"message":"chain is unavailable"}}]`
	assert.JSONEq(t, expected, string(data))
}
