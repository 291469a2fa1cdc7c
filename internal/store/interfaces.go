// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-threat-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FeedRepository is the revision log of the authority server.
type FeedRepository interface {
	// ChangeSetSince folds every change after knownRevision into a single
	// changeset up to the current head. A knownRevision of 0 yields the full
	// dataset; one ahead of the head yields the full dataset with Replace.
	ChangeSetSince(ctx context.Context, key models.DataKey, knownRevision int64) (models.ChangeSet, error)
	// Publish appends a new revision and returns its number.
	Publish(ctx context.Context, key models.DataKey, insert, remove []models.Element) (int64, error)
}

// MatchRepository stores full-hash matches of the authority server.
type MatchRepository interface {
	FindMatches(ctx context.Context, hashPrefix string) ([]models.Match, error)
	SaveMatches(ctx context.Context, matches []models.Match) error
}
