// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_API_TOKEN":      "api_token",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_GRPC_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DATABASE_URI":        "file:threats.db",
		"STORAGE_FILES_UPDATE_INFO_PATH": "/var/lib/threats/update_info.json",

		"ADAPTER_BASE_URL":             "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT":      "15s",
		"ADAPTER_RETRY_COUNT":          "3",
		"ADAPTER_RETRY_WAIT_TIME":      "250ms",
		"ADAPTER_RETRY_MAX_WAIT_TIME":  "2s",
		"ADAPTER_BREAKER_FAILURES":     "7",
		"ADAPTER_BREAKER_OPEN_TIMEOUT": "45s",

		"WORKERS_MODE":                     "periodic",
		"WORKERS_HASH_PREFIX_SET_INTERVAL": "20m",
		"WORKERS_FILTER_SET_INTERVAL":      "12h",
		"WORKERS_BATCH_DATA_KINDS":         "filterSet",
		"WORKERS_SUPPORTED_THREAT_KINDS":   "phishing,malware",

		"TELEMETRY_POSTHOG_API_KEY": "phc_key",
		"TELEMETRY_METRICS_ADDRESS": ":2112",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "api_token", cfg.App.APIToken)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "file:threats.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/threats/update_info.json", cfg.Storage.Files.UpdateInfoPath)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.RetryCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Adapter.RetryWaitTime)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RetryMaxWaitTime)
	assert.Equal(t, uint32(7), cfg.Adapter.BreakerFailures)
	assert.Equal(t, 45*time.Second, cfg.Adapter.BreakerOpenTimeout)

	assert.Equal(t, ModePeriodic, cfg.Workers.Mode)
	assert.Equal(t, 20*time.Minute, cfg.Workers.HashPrefixSetInterval)
	assert.Equal(t, 12*time.Hour, cfg.Workers.FilterSetInterval)
	assert.Equal(t, []string{"filterSet"}, cfg.Workers.BatchDataKinds)
	assert.Equal(t, []string{"phishing", "malware"}, cfg.Workers.SupportedThreatKinds)

	assert.Equal(t, "phc_key", cfg.Telemetry.PostHogAPIKey)
	assert.Equal(t, ":2112", cfg.Telemetry.MetricsAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_TrimsKindLists(t *testing.T) {
	t.Setenv("WORKERS_SUPPORTED_THREAT_KINDS", " phishing, malware,")
	t.Setenv("WORKERS_BATCH_DATA_KINDS", "hashPrefixSet , filterSet")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, []string{"phishing", "malware"}, cfg.Workers.SupportedThreatKinds)
	assert.Equal(t, []string{"hashPrefixSet", "filterSet"}, cfg.Workers.BatchDataKinds)
}
