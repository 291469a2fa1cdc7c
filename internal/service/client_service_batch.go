// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-threat-sync/internal/features"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/store"
	"github.com/MKhiriev/go-threat-sync/models"
)

type batchRunner struct {
	coordinator UpdateCoordinator
	updateInfo  store.UpdateInfoRepository
	features    features.Provider
	clock       clock.PassiveClock
}

func NewBatchRunner(coordinator UpdateCoordinator, updateInfo store.UpdateInfoRepository, provider features.Provider, clk clock.PassiveClock) BatchRunner {
	return &batchRunner{
		coordinator: coordinator,
		updateInfo:  updateInfo,
		features:    provider,
		clock:       clk,
	}
}

// Run implements [BatchRunner]. Keys are updated one after another; a failed
// key is logged and does not stop the batch. When at least one key succeeded
// the update time of every requested kind is stored.
func (b *batchRunner) Run(ctx context.Context, kinds ...models.DataKind) error {
	log := logger.FromContext(ctx)
	threatKinds := b.features.SupportedThreatKinds()

	var (
		attempted int
		failures  []error
	)
	for _, dataKind := range kinds {
		for _, threatKind := range threatKinds {
			if err := ctx.Err(); err != nil {
				return err
			}

			attempted++
			key := models.DataKey{ThreatKind: threatKind, DataKind: dataKind}
			if err := b.coordinator.UpdateDataKey(ctx, key); err != nil {
				log.Err(err).
					Str("func", "batchRunner.Run").
					Str("threat_kind", threatKind.String()).
					Str("data_kind", dataKind.String()).
					Msg("update failed")
				failures = append(failures, fmt.Errorf("%s: %w", key, err))
			}
		}
	}

	if attempted == 0 {
		log.Info().Str("func", "batchRunner.Run").Msg("nothing to update")
		return nil
	}
	if len(failures) == attempted {
		return fmt.Errorf("%w: %w", ErrAllUpdatesFailed, errors.Join(failures...))
	}

	if err := b.updateInfo.SetLastUpdated(ctx, b.clock.Now(), kinds...); err != nil {
		log.Err(err).Str("func", "batchRunner.Run").Msg("failed to store update time")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	log.Info().
		Str("func", "batchRunner.Run").
		Int("updated", attempted-len(failures)).
		Int("failed", len(failures)).
		Msg("batch finished")
	return nil
}

type batchStrategy struct {
	runner BatchRunner
	kinds  []models.DataKind
}

// NewBatchStrategy runs a single batch over kinds.
func NewBatchStrategy(runner BatchRunner, kinds []models.DataKind) SchedulingStrategy {
	return &batchStrategy{runner: runner, kinds: kinds}
}

func (b *batchStrategy) Run(ctx context.Context) error {
	return b.runner.Run(ctx, b.kinds...)
}
