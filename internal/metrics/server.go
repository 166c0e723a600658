// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ChainSafe/tanssi-tools/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

const shutdownTimeout = 5 * time.Second

// Server is a metrics http server.
type Server struct {
	server   *http.Server
	listener net.Listener
	done     chan error
}

// NewServer is a constructor for metrics server
// serving the gatherer metrics on /metrics.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           mux,
			ReadHeaderTimeout: time.Second,
		},
	}
}

// Start listens on the server address and serves in the background.
func (s *Server) Start() (err error) {
	s.listener, err = net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.server.Addr, err)
	}

	logger.Infof("Starting metrics server at http://%s/metrics", s.listener.Addr())

	s.done = make(chan error, 1)
	go func() {
		err := s.server.Serve(s.listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()

	return nil
}

// Address returns the address the server listens on, once started.
func (s *Server) Address() string {
	return s.listener.Addr().String()
}

// Stop shuts down the metrics server.
func (s *Server) Stop() (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = s.server.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("shutting down metrics server: %w", err)
	}

	return <-s.done
}
