// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package features tells the update engine which threat kinds are enabled
// and how often each data kind is refreshed. [Static] serves the values of
// the configuration; [FileProvider] serves a YAML file and reloads it when it
// changes.
package features

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/models"
)

//go:generate mockgen -source=features.go -destination=../mock/features_mock.go -package=mock

// Provider is read at the start of every update cycle and batch.
type Provider interface {
	// SupportedThreatKinds returns the threat kinds updates are enabled for.
	SupportedThreatKinds() []models.ThreatKind
	// UpdateInterval returns the periodic interval of kind. A missing or
	// non-positive interval disables the periodic loop of the kind.
	UpdateInterval(kind models.DataKind) (time.Duration, bool)
}

// Snapshot is an immutable set of feature values.
type Snapshot struct {
	ThreatKinds []models.ThreatKind
	Intervals   map[models.DataKind]time.Duration
}

func (s *Snapshot) supportedThreatKinds() []models.ThreatKind {
	return slices.Clone(s.ThreatKinds)
}

func (s *Snapshot) updateInterval(kind models.DataKind) (time.Duration, bool) {
	interval, ok := s.Intervals[kind]
	return interval, ok
}

// SnapshotFromConfig takes the worker settings of the client configuration.
func SnapshotFromConfig(cfg config.ClientWorkers) Snapshot {
	return Snapshot{
		ThreatKinds: slices.Clone(cfg.SupportedThreatKinds),
		Intervals:   cfg.UpdateIntervals(),
	}
}

// Static is a Provider with fixed values.
type Static struct {
	snapshot Snapshot
}

func NewStatic(snapshot Snapshot) *Static {
	return &Static{snapshot: snapshot}
}

func (s *Static) SupportedThreatKinds() []models.ThreatKind {
	return s.snapshot.supportedThreatKinds()
}

func (s *Static) UpdateInterval(kind models.DataKind) (time.Duration, bool) {
	return s.snapshot.updateInterval(kind)
}
