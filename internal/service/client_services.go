// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-threat-sync/internal/adapter"
	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/events"
	"github.com/MKhiriev/go-threat-sync/internal/features"
	"github.com/MKhiriev/go-threat-sync/internal/store"
)

// ClientServices groups the services of the sync client. Strategy is the
// one selected by the configured workers mode.
type ClientServices struct {
	Coordinator UpdateCoordinator
	BatchRunner BatchRunner
	Scheduler   *PeriodicScheduler
	Strategy    SchedulingStrategy
}

func NewClientServices(
	storages *store.ClientStorages,
	api adapter.ThreatIntelAPI,
	provider features.Provider,
	mapper events.Mapper,
	workers config.ClientWorkers,
	clk clock.Clock,
) (*ClientServices, error) {
	coordinator := NewUpdateCoordinator(storages.DataSetRepository, api, provider, mapper)
	batch := NewBatchRunner(coordinator, storages.UpdateInfoRepository, provider, clk)
	scheduler := NewPeriodicScheduler(coordinator, storages.UpdateInfoRepository, provider, mapper, clk)

	services := &ClientServices{
		Coordinator: coordinator,
		BatchRunner: batch,
		Scheduler:   scheduler,
	}

	switch workers.Mode {
	case config.ModePeriodic:
		services.Strategy = scheduler
	case config.ModeBatch:
		services.Strategy = NewBatchStrategy(batch, workers.BatchDataKinds)
	default:
		return nil, fmt.Errorf("unknown workers mode %q", workers.Mode)
	}

	return services, nil
}
