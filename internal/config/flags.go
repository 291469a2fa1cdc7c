// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a authority server listen address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-metrics-address Prometheus listen address in format [host]:[port]
//	-d database DSN
//	-update-info update info file path
//	-c/-config json file path with configs
//	-api-url threat intelligence API base URL
//	-api-token shared bearer token
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout API request timeout (e.g., "30s", "1m")
//	-retry-count transport retry count
//	-mode scheduling mode: periodic or batch
//	-hash-prefix-interval hash prefix set update interval
//	-filter-set-interval filter set update interval
//	-batch-data-kinds comma separated data kinds updated by a batch run
//	-threat-kinds comma separated supported threat kinds
//	-features-file YAML feature file reloaded on change
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress, metricsAddress NetAddress
	var databaseDSN, updateInfoPath, jsonConfigPath string
	var apiURL, apiToken, tokenSignKey, tokenIssuer string
	var requestTimeout, hashPrefixInterval, filterSetInterval time.Duration
	var retryCount int
	var mode, batchDataKinds, threatKinds, featuresFile string

	fs := flag.NewFlagSet("go-threat-sync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Prometheus metrics address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&updateInfoPath, "update-info", "", "Update info file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiURL, "api-url", "", "Threat intelligence API base URL")
	fs.StringVar(&apiToken, "api-token", "", "Shared API bearer token")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s, 1m)")
	fs.IntVar(&retryCount, "retry-count", 0, "Transport retry count")
	fs.StringVar(&mode, "mode", "", "Scheduling mode: periodic or batch")
	fs.DurationVar(&hashPrefixInterval, "hash-prefix-interval", 0, "Hash prefix set update interval")
	fs.DurationVar(&filterSetInterval, "filter-set-interval", 0, "Filter set update interval")
	fs.StringVar(&batchDataKinds, "batch-data-kinds", "", "Comma separated data kinds of a batch run")
	fs.StringVar(&threatKinds, "threat-kinds", "", "Comma separated supported threat kinds")
	fs.StringVar(&featuresFile, "features-file", "", "YAML features file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIToken:     apiToken,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{UpdateInfoPath: updateInfoPath},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
			GRPCAddress: grpcServerAddress.String(),
		},
		Adapter: Adapter{
			BaseURL:        apiURL,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Workers: Workers{
			Mode:                  mode,
			HashPrefixSetInterval: hashPrefixInterval,
			FilterSetInterval:     filterSetInterval,
			BatchDataKinds:        splitList(batchDataKinds),
			SupportedThreatKinds:  splitList(threatKinds),
			FeaturesFile:          featuresFile,
		},
		Telemetry: Telemetry{
			MetricsAddress: metricsAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
