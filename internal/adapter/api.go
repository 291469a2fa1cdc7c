// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/models"
)

const matchesPath = "/matches"

type threatIntelAPI struct {
	transport Transport
	timeout   time.Duration
}

// NewThreatIntelAPI returns a [ThreatIntelAPI] that sends its requests
// through transport with the given per-request timeout. A zero timeout
// leaves the choice to the transport.
func NewThreatIntelAPI(transport Transport, requestTimeout time.Duration) ThreatIntelAPI {
	return &threatIntelAPI{transport: transport, timeout: requestTimeout}
}

// FetchChangeSet implements [ThreatIntelAPI]. It issues
// GET /<dataKind path>?category=<threatKind>&revision=<knownRevision>.
func (t *threatIntelAPI) FetchChangeSet(ctx context.Context, threatKind models.ThreatKind, dataKind models.DataKind, knownRevision int64) (models.ChangeSet, error) {
	body, err := t.transport.Execute(ctx, models.APIRequest{
		Path: "/" + dataKind.APIPath(),
		Query: url.Values{
			"category": {threatKind.String()},
			"revision": {strconv.FormatInt(knownRevision, 10)},
		},
		Timeout: t.timeout,
	})
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("fetch %s %s changeset: %w", threatKind, dataKind, err)
	}

	var changeSet models.ChangeSet
	if err = json.Unmarshal(body, &changeSet); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "threatIntelAPI.FetchChangeSet").
			Str("threat_kind", threatKind.String()).
			Str("data_kind", dataKind.String()).
			Msg("failed to decode changeset")
		return models.ChangeSet{}, fmt.Errorf("%w: changeset: %w", ErrDecode, err)
	}

	return changeSet, nil
}

// FetchMatches implements [ThreatIntelAPI]. It issues
// GET /matches?hashPrefix=<hashPrefix>.
func (t *threatIntelAPI) FetchMatches(ctx context.Context, hashPrefix string) ([]models.Match, error) {
	body, err := t.transport.Execute(ctx, models.APIRequest{
		Path:    matchesPath,
		Query:   url.Values{"hashPrefix": {hashPrefix}},
		Timeout: t.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch matches: %w", err)
	}

	var response models.MatchesResponse
	if err = json.Unmarshal(body, &response); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "threatIntelAPI.FetchMatches").
			Str("hash_prefix", hashPrefix).
			Msg("failed to decode matches")
		return nil, fmt.Errorf("%w: matches: %w", ErrDecode, err)
	}

	if response.Matches == nil {
		response.Matches = []models.Match{}
	}
	return response.Matches, nil
}
