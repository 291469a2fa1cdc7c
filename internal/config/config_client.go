// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-threat-sync/models"
)

// ClientApp holds client credentials.
type ClientApp struct {
	// APIToken is the shared bearer credential sent on every API call.
	APIToken string
}

// ClientAdapter holds the API client and transport settings.
type ClientAdapter struct {
	BaseURL            string
	RequestTimeout     time.Duration
	RetryCount         int
	RetryWaitTime      time.Duration
	RetryMaxWaitTime   time.Duration
	BreakerFailures    uint32
	BreakerOpenTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB             ClientDB
	UpdateInfoPath string
}

// ClientWorkers contains the update scheduling settings.
type ClientWorkers struct {
	Mode                  string
	HashPrefixSetInterval time.Duration
	FilterSetInterval     time.Duration
	BatchDataKinds        []models.DataKind
	SupportedThreatKinds  []models.ThreatKind
	FeaturesFile          string
}

// UpdateIntervals returns the configured interval per data kind.
func (w ClientWorkers) UpdateIntervals() map[models.DataKind]time.Duration {
	return map[models.DataKind]time.Duration{
		models.DataKindHashPrefixSet: w.HashPrefixSetInterval,
		models.DataKindFilterSet:     w.FilterSetInterval,
	}
}

// ClientTelemetry holds client telemetry exporters.
type ClientTelemetry struct {
	PostHogAPIKey   string
	PostHogEndpoint string
	MetricsAddress  string
	InstallIDPath   string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   ClientStorage
	Workers   ClientWorkers
	Telemetry ClientTelemetry
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dataKinds := make([]models.DataKind, 0, len(cfg.Workers.BatchDataKinds))
	for _, s := range cfg.Workers.BatchDataKinds {
		kind, err := models.ParseDataKind(s)
		if err != nil {
			return nil, errors.Join(ErrInvalidWorkerConfigs, err)
		}
		dataKinds = append(dataKinds, kind)
	}

	threatKinds := make([]models.ThreatKind, 0, len(cfg.Workers.SupportedThreatKinds))
	for _, s := range cfg.Workers.SupportedThreatKinds {
		kind, err := models.ParseThreatKind(s)
		if err != nil {
			return nil, errors.Join(ErrInvalidWorkerConfigs, err)
		}
		threatKinds = append(threatKinds, kind)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			APIToken: cfg.App.APIToken,
		},
		Adapter: ClientAdapter{
			BaseURL:            cfg.Adapter.BaseURL,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			RetryCount:         cfg.Adapter.RetryCount,
			RetryWaitTime:      cfg.Adapter.RetryWaitTime,
			RetryMaxWaitTime:   cfg.Adapter.RetryMaxWaitTime,
			BreakerFailures:    cfg.Adapter.BreakerFailures,
			BreakerOpenTimeout: cfg.Adapter.BreakerOpenTimeout,
		},
		Storage: ClientStorage{
			DB:             ClientDB{DSN: cfg.Storage.DB.DSN},
			UpdateInfoPath: cfg.Storage.Files.UpdateInfoPath,
		},
		Workers: ClientWorkers{
			Mode:                  cfg.Workers.Mode,
			HashPrefixSetInterval: cfg.Workers.HashPrefixSetInterval,
			FilterSetInterval:     cfg.Workers.FilterSetInterval,
			BatchDataKinds:        dataKinds,
			SupportedThreatKinds:  threatKinds,
			FeaturesFile:          cfg.Workers.FeaturesFile,
		},
		Telemetry: ClientTelemetry{
			PostHogAPIKey:   cfg.Telemetry.PostHogAPIKey,
			PostHogEndpoint: cfg.Telemetry.PostHogEndpoint,
			MetricsAddress:  cfg.Telemetry.MetricsAddress,
			InstallIDPath:   cfg.Telemetry.InstallIDPath,
		},
	}

	return clientCfg, clientCfg.validate()
}
