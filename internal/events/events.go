// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events delivers telemetry events. Firing an event never blocks
// and never fails; delivery problems are only logged.
package events

import (
	"errors"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/metrics"
	"github.com/MKhiriev/go-threat-sync/models"
)

//go:generate mockgen -source=events.go -destination=../mock/events_mock.go -package=mock

// Mapper maps an event with its parameters to a telemetry backend.
type Mapper interface {
	Fire(event models.Event, params map[string]string)
}

type nopMapper struct{}

// Nop returns a Mapper that drops every event.
func Nop() Mapper {
	return nopMapper{}
}

func (nopMapper) Fire(models.Event, map[string]string) {}

type logMapper struct {
	logger *logger.Logger
}

// NewLogMapper writes events to the log at warn level.
func NewLogMapper(log *logger.Logger) Mapper {
	return &logMapper{logger: log}
}

func (l *logMapper) Fire(event models.Event, params map[string]string) {
	entry := l.logger.Warn().Str("func", "logMapper.Fire").Str("event", string(event))
	for k, v := range params {
		entry = entry.Str(k, v)
	}
	entry.Msg("telemetry event")
}

type metricsMapper struct{}

// NewMetricsMapper counts events in [metrics.EventsTotal].
func NewMetricsMapper() Mapper {
	return metricsMapper{}
}

func (metricsMapper) Fire(event models.Event, _ map[string]string) {
	metrics.ObserveEvent(event)
}

// multiMapper fans an event out to several mappers in order.
type multiMapper []Mapper

// NewMultiMapper combines mappers; nil entries are skipped.
func NewMultiMapper(mappers ...Mapper) Mapper {
	combined := make(multiMapper, 0, len(mappers))
	for _, m := range mappers {
		if m != nil {
			combined = append(combined, m)
		}
	}
	return combined
}

func (m multiMapper) Fire(event models.Event, params map[string]string) {
	for _, mapper := range m {
		mapper.Fire(event, params)
	}
}

// Telemetry is the Mapper of the client together with the resources it owns.
type Telemetry struct {
	Mapper

	closers []func() error
}

// Close flushes and releases the backends.
func (t *Telemetry) Close() error {
	var errs []error
	for _, closeFn := range t.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
