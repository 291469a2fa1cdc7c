// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/models"
)

type matchRepository struct {
	*DB
}

func NewMatchRepository(db *DB) MatchRepository {
	return &matchRepository{DB: db}
}

func (m *matchRepository) FindMatches(ctx context.Context, hashPrefix string) ([]models.Match, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMatchesQuery(m.builder, hashPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "matchRepository.FindMatches").Str("hash_prefix", hashPrefix).Msg("failed to query matches")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		var category string
		if err = rows.Scan(&match.Hash, &category, &match.Hostname, &match.URL, &match.Regex); err != nil {
			log.Err(err).Str("func", "matchRepository.FindMatches").Msg("failed to scan match row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		match.Category = models.ThreatKind(category)
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return matches, nil
}

func (m *matchRepository) SaveMatches(ctx context.Context, matches []models.Match) error {
	if len(matches) == 0 {
		return nil
	}

	query, args, err := buildUpsertMatchesQuery(m.builder, matches)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = withRetry(ctx, m.errorClassificator, func() error {
		_, err := m.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "matchRepository.SaveMatches").
			Int("matches", len(matches)).
			Msg("failed to save matches")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
