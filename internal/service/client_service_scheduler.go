// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-threat-sync/internal/events"
	"github.com/MKhiriev/go-threat-sync/internal/features"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/store"
	"github.com/MKhiriev/go-threat-sync/models"
)

// staleUpdateThreshold is how long a data kind may go without a successful
// update before a failing cycle fires [models.EventUpdateTaskFailed48h].
const staleUpdateThreshold = 48 * time.Hour

// PeriodicScheduler runs one update loop per data kind. Each loop updates
// the kind for every supported threat kind, then sleeps for the interval of
// the kind. Cycle failures are logged and retried on the next tick; a loop
// only exits when its scope is cancelled.
type PeriodicScheduler struct {
	coordinator UpdateCoordinator
	updateInfo  store.UpdateInfoRepository
	features    features.Provider
	events      events.Mapper
	clock       clock.Clock

	mu    sync.Mutex
	scope *Scope
}

func NewPeriodicScheduler(
	coordinator UpdateCoordinator,
	updateInfo store.UpdateInfoRepository,
	provider features.Provider,
	mapper events.Mapper,
	clk clock.Clock,
) *PeriodicScheduler {
	return &PeriodicScheduler{
		coordinator: coordinator,
		updateInfo:  updateInfo,
		features:    provider,
		events:      mapper,
		clock:       clk,
	}
}

// Start stops a previous run and launches a loop for every data kind with a
// positive interval. Kinds without one are logged at error level and left
// idle. The returned scope completes once every loop has exited.
func (s *PeriodicScheduler) Start(ctx context.Context) *Scope {
	s.Stop()

	log := logger.FromContext(ctx)
	scope := NewScope(ctx)
	startedAt := s.clock.Now()

	for _, kind := range models.AllDataKinds() {
		interval, ok := s.features.UpdateInterval(kind)
		if !ok || interval <= 0 {
			log.Error().
				Str("func", "PeriodicScheduler.Start").
				Str("data_kind", kind.String()).
				Dur("interval", interval).
				Msg("no positive update interval, periodic updates disabled")
			continue
		}

		scope.Go(func(ctx context.Context) error {
			s.loop(ctx, kind, interval, startedAt)
			return nil
		})
	}

	s.mu.Lock()
	s.scope = scope
	s.mu.Unlock()

	return scope
}

// Stop cancels the running loops and blocks until they have exited. Safe to
// call when the scheduler is not running.
func (s *PeriodicScheduler) Stop() {
	s.mu.Lock()
	scope := s.scope
	s.scope = nil
	s.mu.Unlock()

	if scope != nil {
		scope.Cancel()
		_ = scope.Wait()
	}
}

// Run implements [SchedulingStrategy]. It blocks until ctx is cancelled and
// every loop has exited.
func (s *PeriodicScheduler) Run(ctx context.Context) error {
	scope := s.Start(ctx)
	<-ctx.Done()
	s.Stop()
	return scope.Wait()
}

func (s *PeriodicScheduler) loop(ctx context.Context, kind models.DataKind, interval time.Duration, startedAt time.Time) {
	log := logger.FromContext(ctx)
	staleReported := false

	for {
		err := s.runCycle(ctx, kind)
		switch {
		case err == nil:
			staleReported = false
		case ctx.Err() == nil && !staleReported:
			staleReported = s.reportIfStale(ctx, kind, err, startedAt)
		}

		if next, ok := s.features.UpdateInterval(kind); ok && next > 0 {
			interval = next
		} else {
			log.Error().
				Str("func", "PeriodicScheduler.loop").
				Str("data_kind", kind.String()).
				Dur("interval", interval).
				Msg("update interval is no longer positive, keeping the previous one")
		}

		timer := s.clock.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C():
		}
	}
}

// runCycle updates kind for every supported threat kind. It records the
// update time when at least one key succeeded and returns the failures of
// the cycle when none did.
func (s *PeriodicScheduler) runCycle(ctx context.Context, kind models.DataKind) error {
	log := logger.FromContext(ctx)

	var (
		succeeded bool
		failures  []error
	)
	for _, threatKind := range s.features.SupportedThreatKinds() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		key := models.DataKey{ThreatKind: threatKind, DataKind: kind}
		if err := s.coordinator.UpdateDataKey(ctx, key); err != nil {
			log.Err(err).
				Str("func", "PeriodicScheduler.runCycle").
				Str("threat_kind", threatKind.String()).
				Str("data_kind", kind.String()).
				Msg("update failed")
			failures = append(failures, err)
			continue
		}
		succeeded = true
	}

	if !succeeded {
		return errors.Join(failures...)
	}

	if err := s.updateInfo.SetLastUpdated(ctx, s.clock.Now(), kind); err != nil {
		log.Err(err).Str("func", "PeriodicScheduler.runCycle").Str("data_kind", kind.String()).Msg("failed to store update time")
	}
	return nil
}

// reportIfStale fires [models.EventUpdateTaskFailed48h] when the last
// successful update of kind, or the scheduler start if there was none, is
// older than [staleUpdateThreshold]. It reports whether the event fired.
func (s *PeriodicScheduler) reportIfStale(ctx context.Context, kind models.DataKind, cycleErr error, startedAt time.Time) bool {
	lastSuccess := startedAt

	info, err := s.updateInfo.GetUpdateInfo(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "PeriodicScheduler.reportIfStale").Msg("failed to read update info")
	} else if last, ok := info.LastUpdate(kind); ok {
		lastSuccess = last
	}

	if s.clock.Since(lastSuccess) < staleUpdateThreshold {
		return false
	}

	s.events.Fire(models.EventUpdateTaskFailed48h, map[string]string{
		models.EventParamType:  kind.String(),
		models.EventParamError: cycleErr.Error(),
	})
	return true
}
