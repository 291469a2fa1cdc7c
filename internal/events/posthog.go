// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"sync"
	"time"

	"github.com/posthog/posthog-go"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/models"
)

// posthogQueueSize bounds the events waiting for the PostHog client.
const posthogQueueSize = 64

type posthogEvent struct {
	event  models.Event
	params map[string]string
}

// posthogMapper hands events to a background goroutine so Fire never waits
// on the PostHog client. Events are dropped when the queue is full or the
// mapper is closed.
type posthogMapper struct {
	client     posthog.Client
	distinctID string

	mu     sync.RWMutex
	closed bool
	queue  chan posthogEvent
	done   chan struct{}

	logger *logger.Logger
}

func newPostHogMapper(client posthog.Client, distinctID string, log *logger.Logger) *posthogMapper {
	p := &posthogMapper{
		client:     client,
		distinctID: distinctID,
		queue:      make(chan posthogEvent, posthogQueueSize),
		done:       make(chan struct{}),
		logger:     log,
	}
	go p.run()
	return p
}

func (p *posthogMapper) Fire(event models.Event, params map[string]string) {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Debug().Str("func", "posthogMapper.Fire").Str("event", string(event)).Msg("telemetry closed, event dropped")
		return
	}

	select {
	case p.queue <- posthogEvent{event: event, params: copied}:
	default:
		p.logger.Warn().Str("func", "posthogMapper.Fire").Str("event", string(event)).Msg("telemetry queue full, event dropped")
	}
}

func (p *posthogMapper) run() {
	defer close(p.done)

	for e := range p.queue {
		properties := posthog.NewProperties()
		for k, v := range e.params {
			properties.Set(k, v)
		}

		err := p.client.Enqueue(posthog.Capture{
			DistinctId: p.distinctID,
			Event:      string(e.event),
			Properties: properties,
			Timestamp:  time.Now(),
		})
		if err != nil {
			p.logger.Err(err).Str("func", "posthogMapper.run").Str("event", string(e.event)).Msg("failed to enqueue telemetry event")
		}
	}
}

// Close drains the queue and flushes the PostHog client.
func (p *posthogMapper) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	<-p.done
	return p.client.Close()
}

// NewTelemetry builds the client telemetry: events are always logged and
// counted, and sent to PostHog when an API key is configured. The PostHog
// distinct id is the installation id stored at cfg.InstallIDPath.
func NewTelemetry(cfg config.ClientTelemetry, log *logger.Logger) (*Telemetry, error) {
	telemetry := &Telemetry{}
	mappers := []Mapper{NewLogMapper(log), NewMetricsMapper()}

	if cfg.PostHogAPIKey != "" {
		client, err := posthog.NewWithConfig(cfg.PostHogAPIKey, posthog.Config{
			Endpoint:  cfg.PostHogEndpoint,
			BatchSize: 20,
			Interval:  30 * time.Second,
		})
		if err != nil {
			log.Err(err).Str("func", "NewTelemetry").Msg("failed to create PostHog client")
			return nil, err
		}

		installID, err := utils.LoadOrCreateInstallID(cfg.InstallIDPath)
		if err != nil {
			log.Err(err).Str("func", "NewTelemetry").Msg("failed to load install id, using a session id")
			installID = utils.NewUUIDGenerator().Generate()
		}

		mapper := newPostHogMapper(client, installID, log)
		mappers = append(mappers, mapper)
		telemetry.closers = append(telemetry.closers, mapper.Close)
	}

	telemetry.Mapper = NewMultiMapper(mappers...)
	return telemetry, nil
}
