// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		APIToken      string   `json:"api_token"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			UpdateInfoPath string `json:"update_info_path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL            string   `json:"base_url"`
		RequestTimeout     Duration `json:"request_timeout"`
		RetryCount         int      `json:"retry_count"`
		RetryWaitTime      Duration `json:"retry_wait_time"`
		RetryMaxWaitTime   Duration `json:"retry_max_wait_time"`
		BreakerFailures    uint32   `json:"breaker_failures"`
		BreakerOpenTimeout Duration `json:"breaker_open_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		Mode                  string   `json:"mode"`
		HashPrefixSetInterval Duration `json:"hash_prefix_set_interval"`
		FilterSetInterval     Duration `json:"filter_set_interval"`
		BatchDataKinds        []string `json:"batch_data_kinds"`
		SupportedThreatKinds  []string `json:"supported_threat_kinds"`
		FeaturesFile          string   `json:"features_file"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		PostHogAPIKey   string `json:"posthog_api_key"`
		PostHogEndpoint string `json:"posthog_endpoint"`
		MetricsAddress  string `json:"metrics_address"`
		InstallIDPath   string `json:"install_id_path"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIToken:      jsonCfg.App.APIToken,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{UpdateInfoPath: jsonCfg.Storage.Files.UpdateInfoPath},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:            jsonCfg.Adapter.BaseURL,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:         jsonCfg.Adapter.RetryCount,
			RetryWaitTime:      time.Duration(jsonCfg.Adapter.RetryWaitTime),
			RetryMaxWaitTime:   time.Duration(jsonCfg.Adapter.RetryMaxWaitTime),
			BreakerFailures:    jsonCfg.Adapter.BreakerFailures,
			BreakerOpenTimeout: time.Duration(jsonCfg.Adapter.BreakerOpenTimeout),
		},
		Workers: Workers{
			Mode:                  jsonCfg.Workers.Mode,
			HashPrefixSetInterval: time.Duration(jsonCfg.Workers.HashPrefixSetInterval),
			FilterSetInterval:     time.Duration(jsonCfg.Workers.FilterSetInterval),
			BatchDataKinds:        jsonCfg.Workers.BatchDataKinds,
			SupportedThreatKinds:  jsonCfg.Workers.SupportedThreatKinds,
			FeaturesFile:          jsonCfg.Workers.FeaturesFile,
		},
		Telemetry: Telemetry{
			PostHogAPIKey:   jsonCfg.Telemetry.PostHogAPIKey,
			PostHogEndpoint: jsonCfg.Telemetry.PostHogEndpoint,
			MetricsAddress:  jsonCfg.Telemetry.MetricsAddress,
			InstallIDPath:   jsonCfg.Telemetry.InstallIDPath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
