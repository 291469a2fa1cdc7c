// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment using the `env` and `envPrefix`
// tags of [StructuredConfig]. Comma separated kind lists are trimmed the same
// way the flags are, so "phishing, malware," yields two kinds.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Workers.BatchDataKinds = trimList(cfg.Workers.BatchDataKinds)
	cfg.Workers.SupportedThreatKinds = trimList(cfg.Workers.SupportedThreatKinds)
	return nil
}

func trimList(items []string) []string {
	if items == nil {
		return nil
	}
	return splitList(strings.Join(items, ","))
}
