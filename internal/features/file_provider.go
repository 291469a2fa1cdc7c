// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package features

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/models"
)

const defaultDebounce = 200 * time.Millisecond

var ErrInvalidFeaturesFile = errors.New("invalid features file")

// featuresFile is the YAML layout of the features file:
//
//	supportedThreatKinds: [phishing, malware]
//	updateIntervals:
//	  hashPrefixSet: 20m
//	  filterSet: 12h
//
// Omitted sections keep the fallback values.
type featuresFile struct {
	SupportedThreatKinds []string                 `yaml:"supportedThreatKinds"`
	UpdateIntervals      map[string]time.Duration `yaml:"updateIntervals"`
}

// FileProvider serves the features file at path. The file is re-read on
// every write to it; a file that fails to parse keeps the last good values.
type FileProvider struct {
	path     string
	fallback Snapshot
	current  atomic.Pointer[Snapshot]
	debounce time.Duration

	logger *logger.Logger
}

// NewFileProvider loads path on top of fallback. A missing or invalid file
// is logged and leaves the fallback in effect.
func NewFileProvider(path string, fallback Snapshot, log *logger.Logger) *FileProvider {
	p := &FileProvider{
		path:     path,
		fallback: fallback,
		debounce: defaultDebounce,
		logger:   log,
	}
	p.current.Store(&fallback)

	if err := p.Reload(); err != nil {
		log.Err(err).Str("func", "NewFileProvider").Str("path", path).Msg("features file not loaded, using configuration values")
	}
	return p
}

func (p *FileProvider) SupportedThreatKinds() []models.ThreatKind {
	return p.current.Load().supportedThreatKinds()
}

func (p *FileProvider) UpdateInterval(kind models.DataKind) (time.Duration, bool) {
	return p.current.Load().updateInterval(kind)
}

// Reload reads the file and swaps the served values. On error the previous
// values stay in effect.
func (p *FileProvider) Reload() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read features file: %w", err)
	}

	snapshot, err := parseFeatures(data, p.fallback)
	if err != nil {
		return err
	}

	p.current.Store(&snapshot)
	return nil
}

func parseFeatures(data []byte, fallback Snapshot) (Snapshot, error) {
	var file featuresFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidFeaturesFile, err)
	}

	snapshot := Snapshot{
		ThreatKinds: fallback.ThreatKinds,
		Intervals:   maps.Clone(fallback.Intervals),
	}
	if snapshot.Intervals == nil {
		snapshot.Intervals = make(map[models.DataKind]time.Duration)
	}

	if file.SupportedThreatKinds != nil {
		kinds := make([]models.ThreatKind, 0, len(file.SupportedThreatKinds))
		for _, raw := range file.SupportedThreatKinds {
			kind, err := models.ParseThreatKind(raw)
			if err != nil {
				return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidFeaturesFile, err)
			}
			kinds = append(kinds, kind)
		}
		snapshot.ThreatKinds = kinds
	}

	for raw, interval := range file.UpdateIntervals {
		kind, err := models.ParseDataKind(raw)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidFeaturesFile, err)
		}
		snapshot.Intervals[kind] = interval
	}

	return snapshot, nil
}

// Watch reloads the file after it changes until ctx is done. The parent
// directory is watched so that editors replacing the file are noticed too.
func (p *FileProvider) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(p.path)); err != nil {
		return fmt.Errorf("watching features directory: %w", err)
	}

	target := filepath.Clean(p.path)
	timer := time.NewTimer(p.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(p.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Err(err).Str("func", "FileProvider.Watch").Msg("features watcher error")

		case <-timer.C:
			if err := p.Reload(); err != nil {
				p.logger.Err(err).Str("func", "FileProvider.Watch").Str("path", p.path).Msg("features reload failed, keeping previous values")
				continue
			}
			p.logger.Info().Str("func", "FileProvider.Watch").Str("path", p.path).Msg("features reloaded")

		case <-ctx.Done():
			return nil
		}
	}
}
