// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"bytes"
	"path/filepath"
	"sync"
	"testing"

	"github.com/posthog/posthog-go"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/metrics"
	"github.com/MKhiriev/go-threat-sync/models"
)

type recordingMapper struct {
	mu     sync.Mutex
	events []models.Event
}

func (r *recordingMapper) Fire(event models.Event, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// fakePostHog overrides the methods of posthog.Client the mapper uses.
type fakePostHog struct {
	posthog.Client

	mu       sync.Mutex
	messages []posthog.Message
	closed   bool
}

func (f *fakePostHog) Enqueue(msg posthog.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakePostHog) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestMultiMapper_FansOut(t *testing.T) {
	first, second := &recordingMapper{}, &recordingMapper{}
	mapper := NewMultiMapper(first, nil, second)

	mapper.Fire(models.EventUpdateTaskFailed48h, nil)

	assert.Equal(t, []models.Event{models.EventUpdateTaskFailed48h}, first.events)
	assert.Equal(t, []models.Event{models.EventUpdateTaskFailed48h}, second.events)
}

func TestLogMapper_WritesParams(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	NewLogMapper(log).Fire(models.EventFailedToDownloadInitialDataSets, map[string]string{
		models.EventParamCategory: "phishing",
		models.EventParamType:     "hashPrefixSet",
	})

	out := buf.String()
	assert.Contains(t, out, `"event":"failedToDownloadInitialDataSets"`)
	assert.Contains(t, out, `"category":"phishing"`)
	assert.Contains(t, out, `"type":"hashPrefixSet"`)
}

func TestMetricsMapper_Counts(t *testing.T) {
	counter := metrics.EventsTotal.WithLabelValues(string(models.EventFailedToDownloadInitialDataSets))
	before := testutil.ToFloat64(counter)

	NewMetricsMapper().Fire(models.EventFailedToDownloadInitialDataSets, nil)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestPostHogMapper_EnqueuesCapture(t *testing.T) {
	client := &fakePostHog{}
	mapper := newPostHogMapper(client, "install-1", logger.Nop())

	params := map[string]string{models.EventParamType: "filterSet", models.EventParamError: "offline"}
	mapper.Fire(models.EventUpdateTaskFailed48h, params)
	params[models.EventParamType] = "mutated"

	require.NoError(t, mapper.Close())

	require.Len(t, client.messages, 1)
	capture, ok := client.messages[0].(posthog.Capture)
	require.True(t, ok)
	assert.Equal(t, "install-1", capture.DistinctId)
	assert.Equal(t, "updateTaskFailed48h", capture.Event)
	assert.Equal(t, "filterSet", capture.Properties[models.EventParamType])
	assert.Equal(t, "offline", capture.Properties[models.EventParamError])
	assert.True(t, client.closed)
}

func TestPostHogMapper_FireAfterClose(t *testing.T) {
	client := &fakePostHog{}
	mapper := newPostHogMapper(client, "install-1", logger.Nop())
	require.NoError(t, mapper.Close())

	assert.NotPanics(t, func() { mapper.Fire(models.EventUpdateTaskFailed48h, nil) })
	assert.NotPanics(t, func() { _ = mapper.Close() })
	assert.Empty(t, client.messages)
}

func TestNewTelemetry_WithoutPostHog(t *testing.T) {
	telemetry, err := NewTelemetry(config.ClientTelemetry{InstallIDPath: filepath.Join(t.TempDir(), "install_id")}, logger.Nop())
	require.NoError(t, err)

	telemetry.Fire(models.EventUpdateTaskFailed48h, nil)
	assert.NoError(t, telemetry.Close())
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Fire(models.EventUpdateTaskFailed48h, nil) })
}
