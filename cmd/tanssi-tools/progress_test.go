// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"testing"

	"github.com/ChainSafe/tanssi-tools/internal/fakenode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_progressActions(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		initialBlock uint64
		args         []string
		finalBlock   uint64
		output       string
		errWrapped   error
	}{
		"jump_blocks": {
			initialBlock: 4,
			args:         []string{"jump-blocks", "--count", "3"},
			finalBlock:   7,
			output:       "Created 3 blocks, last block is " + fakenode.BlockHash(7).String(),
		},
		"jump_blocks_with_metrics": {
			args:       []string{"jump-blocks", "--count", "1", "--metrics-address", "127.0.0.1:0"},
			finalBlock: 1,
			output:     "Created 1 blocks",
		},
		"jump_sessions": {
			initialBlock: 5,
			args:         []string{"jump-sessions", "--count", "2"},
			finalBlock:   20,
			output:       "Session reached at block " + fakenode.BlockHash(20).String(),
		},
		"jump_to_session": {
			initialBlock: 12,
			args:         []string{"jump-to-session", "--session", "3"},
			finalBlock:   30,
			output:       "Session reached at block " + fakenode.BlockHash(30).String(),
		},
		"jump_to_past_session": {
			initialBlock: 25,
			args:         []string{"jump-to-session", "--session", "1"},
			finalBlock:   25,
			errWrapped:   ErrSessionPassed,
		},
		"wait_zero_sessions": {
			initialBlock: 25,
			args:         []string{"wait-sessions", "--count", "0", "--poll-interval", "10ms"},
			finalBlock:   25,
			output:       "Session reached at block " + fakenode.BlockHash(25).String(),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fakeNode := fakenode.New(fakenode.Settings{BlockNumber: testCase.initialBlock})
			t.Cleanup(fakeNode.Close)

			args := append([]string{"--url", fakeNode.URL(), "--timeout", "10s"}, testCase.args...)
			output, err := runApp(t, args...)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Contains(t, output, testCase.output)
			assert.Equal(t, testCase.finalBlock, fakeNode.BlockNumber())
		})
	}
}

func Test_progressActions_noEndpoint(t *testing.T) {
	t.Parallel()

	_, err := runApp(t, "jump-blocks")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEndpoint)
}
