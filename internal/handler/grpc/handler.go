// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the authority
// server. The serving status follows database reachability.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
)

// FeedServiceName is the health service name reported next to the overall
// ("") status.
const FeedServiceName = "threatsync.Feed"

const defaultCheckInterval = 10 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server and refreshes its status from the database
// pinger. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	health *health.Server
	pinger Pinger

	checkInterval time.Duration

	logger *logger.Logger
}

func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:        health.NewServer(),
		pinger:        pinger,
		checkInterval: defaultCheckInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register adds the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Watch refreshes the serving status until ctx is cancelled, then reports
// NOT_SERVING for good.
func (h *Handler) Watch(ctx context.Context) error {
	ticker := time.NewTicker(h.checkInterval)
	defer ticker.Stop()

	for {
		h.check(ctx)

		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
		}
	}
}

func (h *Handler) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.checkInterval/2)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.check").Msg("database is unreachable")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(FeedServiceName, status)
}
