// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-threat-sync/internal/adapter"
	"github.com/MKhiriev/go-threat-sync/internal/events"
	"github.com/MKhiriev/go-threat-sync/internal/features"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/metrics"
	"github.com/MKhiriev/go-threat-sync/internal/store"
	"github.com/MKhiriev/go-threat-sync/internal/validators"
	"github.com/MKhiriev/go-threat-sync/models"
)

type updateCoordinator struct {
	dataSets  store.DataSetRepository
	api       adapter.ThreatIntelAPI
	features  features.Provider
	events    events.Mapper
	validator validators.Validator

	// keyLocks serializes updates of the same key.
	keyLocks sync.Map
}

// NewUpdateCoordinator builds the [UpdateCoordinator] over the local dataset
// storage and the API client. Support of a threat kind is looked up in
// provider on every call.
func NewUpdateCoordinator(dataSets store.DataSetRepository, api adapter.ThreatIntelAPI, provider features.Provider, mapper events.Mapper) UpdateCoordinator {
	return &updateCoordinator{
		dataSets:  dataSets,
		api:       api,
		features:  provider,
		events:    mapper,
		validator: validators.NewChangeSetValidator(),
	}
}

func (c *updateCoordinator) lock(key models.DataKey) func() {
	mu, _ := c.keyLocks.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return mu.(*sync.Mutex).Unlock
}

// UpdateDataKey implements [UpdateCoordinator].
func (c *updateCoordinator) UpdateDataKey(ctx context.Context, key models.DataKey) error {
	if !slices.Contains(c.features.SupportedThreatKinds(), key.ThreatKind) {
		return nil
	}

	unlock := c.lock(key)
	defer unlock()

	log := logger.FromContext(ctx).WithDataKey(key)
	start := time.Now()
	outcome := metrics.OutcomeFailed
	defer func() { metrics.ObserveUpdate(key, outcome, time.Since(start)) }()

	oldRevision, err := c.dataSets.CurrentRevision(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "updateCoordinator.UpdateDataKey").Msg("failed to read current revision")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	changeSet, err := c.api.FetchChangeSet(ctx, key.ThreatKind, key.DataKind, oldRevision)
	if err != nil {
		if oldRevision == 0 && errors.Is(err, adapter.ErrNoConnectivity) {
			c.events.Fire(models.EventFailedToDownloadInitialDataSets, map[string]string{
				models.EventParamCategory: key.ThreatKind.String(),
				models.EventParamType:     key.DataKind.String(),
			})
		}
		log.Err(err).Str("func", "updateCoordinator.UpdateDataKey").Int64("old_revision", oldRevision).Msg("failed to fetch changeset")
		return mapAdapterError(err)
	}

	err = c.validator.Validate(ctx, validators.ChangeSetUpdate{Key: key, KnownRevision: oldRevision, ChangeSet: changeSet})
	if err != nil {
		log.Err(err).Str("func", "updateCoordinator.UpdateDataKey").Int64("old_revision", oldRevision).Msg("invalid changeset")
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	if changeSet.IsEmpty() && changeSet.Revision == oldRevision {
		outcome = metrics.OutcomeUnchanged
		log.Debug().Int64("revision", oldRevision).Msg("no changes")
		return nil
	}

	if err = c.dataSets.ApplyChangeSet(ctx, key, changeSet); err != nil {
		log.Err(err).Str("func", "updateCoordinator.UpdateDataKey").Int64("old_revision", oldRevision).Int64("new_revision", changeSet.Revision).Msg("failed to apply changeset")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	outcome = metrics.OutcomeApplied
	metrics.SetRevision(key, changeSet.Revision)
	log.Debug().
		Int64("old_revision", oldRevision).
		Int64("new_revision", changeSet.Revision).
		Int("inserted", len(changeSet.Insert)).
		Int("removed", len(changeSet.Remove)).
		Bool("replace", changeSet.Replace).
		Msg("dataset updated")
	return nil
}
