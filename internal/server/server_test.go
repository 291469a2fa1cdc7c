// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/handler"
	myGRPC "github.com/MKhiriev/go-threat-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func runUntilCancelled(t *testing.T, run func(ctx context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestHTTPServer_GracefulShutdown(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	runUntilCancelled(t, srv.Run)
}

func TestHTTPServer_ListenFailure(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "256.0.0.1:http"}, logger.Nop())

	err := srv.Run(context.Background())
	assert.Error(t, err)
}

func TestGRPCServer_GracefulShutdown(t *testing.T) {
	h := myGRPC.NewHandler(okPinger{}, logger.Nop())
	srv := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	runUntilCancelled(t, srv.Run)
}
