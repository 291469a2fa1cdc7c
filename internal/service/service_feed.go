// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/store"
	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/internal/validators"
	"github.com/MKhiriev/go-threat-sync/models"
)

type feedService struct {
	feed      store.FeedRepository
	matches   store.MatchRepository
	validator validators.Validator

	logger *logger.Logger
}

// NewFeedService builds the [FeedService] of the authority server. Payloads
// are validated before they reach storage; validation failures match
// [ErrInvalidDataProvided].
func NewFeedService(feed store.FeedRepository, matches store.MatchRepository, logger *logger.Logger) FeedService {
	return &feedService{
		feed:      feed,
		matches:   matches,
		validator: validators.NewFeedValidator(),
		logger:    logger,
	}
}

func (f *feedService) ChangeSet(ctx context.Context, key models.DataKey, knownRevision int64) (models.ChangeSet, error) {
	if knownRevision < 0 {
		return models.ChangeSet{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrNegativeRevision)
	}

	changeSet, err := f.feed.ChangeSetSince(ctx, key, knownRevision)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "feedService.ChangeSet").
			Str("data_key", key.String()).
			Int64("known_revision", knownRevision).
			Msg("failed to build changeset")
		return models.ChangeSet{}, fmt.Errorf("build changeset: %w", err)
	}

	return changeSet, nil
}

func (f *feedService) Publish(ctx context.Context, req models.PublishRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "feedService.Publish").Msg("invalid publish request")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key := models.DataKey{ThreatKind: req.Category, DataKind: req.DataKind}
	revision, err := f.feed.Publish(ctx, key, req.Insert, req.Remove)
	if err != nil {
		return 0, fmt.Errorf("publish revision: %w", err)
	}

	log.Info().
		Str("func", "feedService.Publish").
		Str("data_key", key.String()).
		Int64("revision", revision).
		Int("inserted", len(req.Insert)).
		Int("removed", len(req.Remove)).
		Msg("revision published")
	return revision, nil
}

func (f *feedService) Matches(ctx context.Context, hashPrefix string) ([]models.Match, error) {
	if err := f.validator.Validate(ctx, validators.HashPrefixQuery(hashPrefix)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	matches, err := f.matches.FindMatches(ctx, hashPrefix)
	if err != nil {
		return nil, fmt.Errorf("find matches: %w", err)
	}
	return matches, nil
}

// RegisterMatches stores full-hash matches. A match without a hash is keyed by
// the SHA-256 of its url expression.
func (f *feedService) RegisterMatches(ctx context.Context, req models.RegisterMatchesRequest) error {
	matches := make([]models.Match, len(req.Matches))
	for i, m := range req.Matches {
		if m.Hash == "" && m.URL != "" {
			m.Hash = utils.SHA256Hex(m.URL)
		}
		matches[i] = m
	}
	req.Matches = matches

	if err := f.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "feedService.RegisterMatches").Msg("invalid matches")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := f.matches.SaveMatches(ctx, req.Matches); err != nil {
		return fmt.Errorf("save matches: %w", err)
	}
	return nil
}
