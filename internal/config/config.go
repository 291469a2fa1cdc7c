// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the reference authority server. It is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credentials and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the local or server database and the update-info file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses of the authority server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound API client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds update scheduling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry holds event and metrics exporters.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds credentials and token lifecycle settings.
type App struct {
	// APIToken is the shared bearer credential the client sends to the API.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// TokenSignKey is the HMAC key used by the server to sign and verify
	// bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds file based key-value storage settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds the database connection settings. The client uses a SQLite DSN,
// the server a PostgreSQL one.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds paths of small state files kept next to the database.
type Files struct {
	// UpdateInfoPath is the JSON file with last successful update dates.
	// Env: STORAGE_FILES_UPDATE_INFO_PATH
	UpdateInfoPath string `env:"UPDATE_INFO_PATH"`
}

// Server holds listen addresses of the authority server.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health service when set.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the API client and transport settings.
type Adapter struct {
	// BaseURL is the threat intelligence API root, e.g.
	// "https://threats.example.com/api/v1".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout of a single API call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of transport retries on 5xx and connection
	// errors.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// Env: ADAPTER_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME"`

	// Env: ADAPTER_RETRY_MAX_WAIT_TIME
	RetryMaxWaitTime time.Duration `env:"RETRY_MAX_WAIT_TIME"`

	// BreakerFailures is the number of consecutive failures that opens the
	// circuit breaker.
	// Env: ADAPTER_BREAKER_FAILURES
	BreakerFailures uint32 `env:"BREAKER_FAILURES"`

	// BreakerOpenTimeout is how long the breaker stays open.
	// Env: ADAPTER_BREAKER_OPEN_TIMEOUT
	BreakerOpenTimeout time.Duration `env:"BREAKER_OPEN_TIMEOUT"`
}

// Workers holds the update scheduling settings.
type Workers struct {
	// Mode selects the scheduling strategy: "periodic" or "batch".
	// Env: WORKERS_MODE
	Mode string `env:"MODE"`

	// HashPrefixSetInterval is the update period of hash prefix sets.
	// A non-positive value disables the loop.
	// Env: WORKERS_HASH_PREFIX_SET_INTERVAL
	HashPrefixSetInterval time.Duration `env:"HASH_PREFIX_SET_INTERVAL"`

	// FilterSetInterval is the update period of filter sets.
	// Env: WORKERS_FILTER_SET_INTERVAL
	FilterSetInterval time.Duration `env:"FILTER_SET_INTERVAL"`

	// BatchDataKinds is the category a batch run updates.
	// Env: WORKERS_BATCH_DATA_KINDS (comma separated)
	BatchDataKinds []string `env:"BATCH_DATA_KINDS" envSeparator:","`

	// SupportedThreatKinds gates which threat kinds are updated.
	// Env: WORKERS_SUPPORTED_THREAT_KINDS (comma separated)
	SupportedThreatKinds []string `env:"SUPPORTED_THREAT_KINDS" envSeparator:","`

	// FeaturesFile is an optional YAML file that overrides supported threat
	// kinds and intervals and is reloaded on change.
	// Env: WORKERS_FEATURES_FILE
	FeaturesFile string `env:"FEATURES_FILE"`
}

// Telemetry holds event and metrics exporters.
type Telemetry struct {
	// PostHogAPIKey enables the PostHog event sink when set.
	// Env: TELEMETRY_POSTHOG_API_KEY
	PostHogAPIKey string `env:"POSTHOG_API_KEY"`

	// Env: TELEMETRY_POSTHOG_ENDPOINT
	PostHogEndpoint string `env:"POSTHOG_ENDPOINT"`

	// MetricsAddress exposes Prometheus metrics on host:port when set.
	// Env: TELEMETRY_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// InstallIDPath stores the anonymous installation id used as the
	// telemetry distinct id.
	// Env: TELEMETRY_INSTALL_ID_PATH
	InstallIDPath string `env:"INSTALL_ID_PATH"`
}

// Scheduling modes accepted by Workers.Mode.
const (
	ModePeriodic = "periodic"
	ModeBatch    = "batch"
)

// defaults returns the lowest priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-threat-sync",
			TokenDuration: 365 * 24 * time.Hour,
		},
		Storage: Storage{
			DB:    DB{DSN: "file:threats.db?_foreign_keys=on&_busy_timeout=5000"},
			Files: Files{UpdateInfoPath: "update_info.json"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout:     60 * time.Second,
			RetryCount:         2,
			RetryWaitTime:      500 * time.Millisecond,
			RetryMaxWaitTime:   5 * time.Second,
			BreakerFailures:    5,
			BreakerOpenTimeout: time.Minute,
		},
		Workers: Workers{
			Mode:                  ModePeriodic,
			HashPrefixSetInterval: 20 * time.Minute,
			FilterSetInterval:     12 * time.Hour,
			BatchDataKinds:        []string{"hashPrefixSet", "filterSet"},
			SupportedThreatKinds:  []string{"phishing", "malware", "scam"},
		},
		Telemetry: Telemetry{
			PostHogEndpoint: "https://us.i.posthog.com",
			InstallIDPath:   "install_id",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
