// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":2112", expectedAddr: NetAddress{Port: 2112}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be in range"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be in range"},
		{name: "invalid IP address", input: "invalid.host:8080", errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "client flags",
			args: []string{
				"-d", "file:threats.db",
				"-update-info", "/tmp/update_info.json",
				"-api-url", "https://api.example.com/v1",
				"-api-token", "token",
				"-request-timeout", "30s",
				"-retry-count", "4",
				"-mode", "batch",
				"-hash-prefix-interval", "10m",
				"-filter-set-interval", "6h",
				"-batch-data-kinds", "hashPrefixSet, filterSet",
				"-threat-kinds", "phishing,scam",
				"-features-file", "/etc/threats/features.yaml",
				"-metrics-address", "127.0.0.1:2112",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "file:threats.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/tmp/update_info.json", cfg.Storage.Files.UpdateInfoPath)
				assert.Equal(t, "https://api.example.com/v1", cfg.Adapter.BaseURL)
				assert.Equal(t, "token", cfg.App.APIToken)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 4, cfg.Adapter.RetryCount)
				assert.Equal(t, ModeBatch, cfg.Workers.Mode)
				assert.Equal(t, 10*time.Minute, cfg.Workers.HashPrefixSetInterval)
				assert.Equal(t, 6*time.Hour, cfg.Workers.FilterSetInterval)
				assert.Equal(t, []string{"hashPrefixSet", "filterSet"}, cfg.Workers.BatchDataKinds)
				assert.Equal(t, []string{"phishing", "scam"}, cfg.Workers.SupportedThreatKinds)
				assert.Equal(t, "/etc/threats/features.yaml", cfg.Workers.FeaturesFile)
				assert.Equal(t, "127.0.0.1:2112", cfg.Telemetry.MetricsAddress)
			},
		},
		{
			name: "server flags",
			args: []string{
				"-a", "127.0.0.1:3000",
				"-grpc-address", "localhost:9090",
				"-token-sign-key", "secret",
				"-token-issuer", "authority",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
				assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
				assert.Equal(t, "secret", cfg.App.TokenSignKey)
				assert.Equal(t, "authority", cfg.App.TokenIssuer)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Nil(t, cfg.Workers.BatchDataKinds)
				assert.Nil(t, cfg.Workers.SupportedThreatKinds)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	require.Error(t, err)
}
