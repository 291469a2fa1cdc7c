// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-threat-sync/internal/adapter"
	"github.com/MKhiriev/go-threat-sync/internal/client"
	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/events"
	"github.com/MKhiriev/go-threat-sync/internal/features"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/metrics"
	"github.com/MKhiriev/go-threat-sync/internal/service"
	"github.com/MKhiriev/go-threat-sync/internal/store"
	"github.com/MKhiriev/go-threat-sync/internal/workers"
	"github.com/MKhiriev/go-threat-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("threat-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) error {
	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}
	api := adapter.NewThreatIntelAPI(transport, cfg.Adapter.RequestTimeout)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	telemetry, err := events.NewTelemetry(cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("create telemetry: %w", err)
	}
	defer telemetry.Close()

	background := workers.New()

	var provider features.Provider = features.NewStatic(features.SnapshotFromConfig(cfg.Workers))
	if cfg.Workers.FeaturesFile != "" {
		fileProvider := features.NewFileProvider(cfg.Workers.FeaturesFile, features.SnapshotFromConfig(cfg.Workers), log)
		background.Add("features", workers.WorkerFunc(fileProvider.Watch))
		provider = fileProvider
	}

	if cfg.Telemetry.MetricsAddress != "" {
		background.Add("metrics", client.MetricsWorker(metrics.NewServer(cfg.Telemetry.MetricsAddress), log))
	}

	services, err := service.NewClientServices(storages, api, provider, telemetry, cfg.Workers, clock.RealClock{})
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}

	app, err := client.NewApp(services, background, cfg.Workers, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
