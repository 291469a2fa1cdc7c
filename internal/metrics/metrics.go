// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the synchronization
// engine and the HTTP server exposing them.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-threat-sync/models"
)

// Update outcomes.
const (
	OutcomeApplied   = "applied"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"
)

var (
	// UpdatesTotal counts update attempts per key and outcome.
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "threat_sync_updates_total",
			Help: "Total number of dataset update attempts",
		},
		[]string{"threat_kind", "data_kind", "outcome"},
	)

	// EventsTotal counts fired telemetry events.
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "threat_sync_events_total",
			Help: "Total number of telemetry events fired",
		},
		[]string{"event"},
	)

	// DatasetRevision is the last applied revision per key.
	DatasetRevision = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "threat_sync_dataset_revision",
			Help: "Revision of the local dataset",
		},
		[]string{"threat_kind", "data_kind"},
	)

	// UpdateDuration measures single key updates.
	UpdateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "threat_sync_update_duration_seconds",
			Help:    "Duration of a dataset update in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"data_kind"},
	)
)

// ObserveUpdate records one update of key.
func ObserveUpdate(key models.DataKey, outcome string, took time.Duration) {
	UpdatesTotal.WithLabelValues(key.ThreatKind.String(), key.DataKind.String(), outcome).Inc()
	UpdateDuration.WithLabelValues(key.DataKind.String()).Observe(took.Seconds())
}

// SetRevision records the revision key was brought to.
func SetRevision(key models.DataKey, revision int64) {
	DatasetRevision.WithLabelValues(key.ThreatKind.String(), key.DataKind.String()).Set(float64(revision))
}

// ObserveEvent counts a fired telemetry event.
func ObserveEvent(event models.Event) {
	EventsTotal.WithLabelValues(string(event)).Inc()
}

// NewServer returns an HTTP server exposing the default registry at /metrics.
func NewServer(address string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
