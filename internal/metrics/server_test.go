// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Server(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	metrics, err := NewPrometheus(registry)
	require.NoError(t, err)
	metrics.BlockCreated()

	server := NewServer("127.0.0.1:0", registry)
	err = server.Start()
	require.NoError(t, err)

	response, err := http.Get("http://" + server.Address() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	err = response.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, string(body), "tanssi_tools_progress_blocks_created_total 1")

	err = server.Stop()
	assert.NoError(t, err)
}
