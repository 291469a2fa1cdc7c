// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-threat-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

// Run serves the health service and keeps its status current.
func (g *grpcServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		_ = g.handler.Watch(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info().Str("address", g.address).Msg("launching gRPC server")
		errCh <- g.server.Serve(listener)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("gRPC server Serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
	<-errCh
	return nil
}
