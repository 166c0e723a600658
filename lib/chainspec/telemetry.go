// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chainspec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TelemetryEndpoints is the list of telemetry endpoints of the chain.
// A nil value is encoded as JSON null.
type TelemetryEndpoints []TelemetryEndpoint

// TelemetryEndpoint is a telemetry url with its verbosity, encoded
// in JSON as the tuple [url, verbosity].
type TelemetryEndpoint struct {
	Endpoint  string
	Verbosity uint8
}

var ErrTelemetryEndpointMalformed = errors.New("telemetry endpoint is malformed")

// MarshalJSON encodes the endpoint as a [url, verbosity] tuple.
func (t TelemetryEndpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{t.Endpoint, t.Verbosity})
}

// UnmarshalJSON decodes a [url, verbosity] tuple.
func (t *TelemetryEndpoint) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	err := json.Unmarshal(data, &tuple)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTelemetryEndpointMalformed, err)
	}

	if len(tuple) != 2 {
		return fmt.Errorf("%w: expected 2 fields, got %d",
			ErrTelemetryEndpointMalformed, len(tuple))
	}

	err = json.Unmarshal(tuple[0], &t.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: endpoint: %s", ErrTelemetryEndpointMalformed, err)
	}

	err = json.Unmarshal(tuple[1], &t.Verbosity)
	if err != nil {
		return fmt.Errorf("%w: verbosity: %s", ErrTelemetryEndpointMalformed, err)
	}

	return nil
}
