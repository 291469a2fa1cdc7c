// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/models"
)

// feedRepository keeps every published element change in dataset_changes
// and the latest revision per key in dataset_heads.
type feedRepository struct {
	*DB
}

func NewFeedRepository(db *DB) FeedRepository {
	return &feedRepository{DB: db}
}

func (f *feedRepository) ChangeSetSince(ctx context.Context, key models.DataKey, knownRevision int64) (models.ChangeSet, error) {
	log := logger.FromContext(ctx)

	head, err := f.head(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "feedRepository.ChangeSetSince").Str("data_key", key.String()).Msg("failed to read head revision")
		return models.ChangeSet{}, err
	}

	if knownRevision == head {
		return models.ChangeSet{Revision: head, Insert: []models.Element{}, Remove: []models.Element{}}, nil
	}

	replace := knownRevision > head
	full := knownRevision == 0 || replace
	after := knownRevision
	if full {
		after = -1
	}

	query, args, err := buildSelectChangesQuery(f.builder, key, after, head)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "feedRepository.ChangeSetSince").Str("data_key", key.String()).Msg("failed to query changes")
		return models.ChangeSet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var changes []changeRow
	for rows.Next() {
		var row changeRow
		if err = rows.Scan(&row.revision, &row.op, &row.element.HashPrefix, &row.element.Regex); err != nil {
			log.Err(err).Str("func", "feedRepository.ChangeSetSince").Msg("failed to scan change row")
			return models.ChangeSet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		changes = append(changes, row)
	}
	if err = rows.Err(); err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	insert, remove := foldChanges(changes, full)
	return models.ChangeSet{
		Revision: head,
		Insert:   insert,
		Remove:   remove,
		Replace:  replace,
	}, nil
}

func (f *feedRepository) head(ctx context.Context, key models.DataKey) (int64, error) {
	query, args, err := buildSelectHeadQuery(f.builder, key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var head int64
	err = f.DB.QueryRowContext(ctx, query, args...).Scan(&head)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return head, nil
}

// Publish bumps the head and records the changes in one transaction,
// retrying transient PostgreSQL failures.
func (f *feedRepository) Publish(ctx context.Context, key models.DataKey, insert, remove []models.Element) (int64, error) {
	var revision int64
	err := withRetry(ctx, f.errorClassificator, func() error {
		var err error
		revision, err = f.publish(ctx, key, insert, remove)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "feedRepository.Publish").
			Str("data_key", key.String()).
			Msg("failed to publish revision")
		return 0, err
	}
	return revision, nil
}

func (f *feedRepository) publish(ctx context.Context, key models.DataKey, insert, remove []models.Element) (revision int64, err error) {
	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildNextHeadQuery(f.builder, key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&revision); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	batches := []struct {
		op       int
		elements []models.Element
	}{{op: opRemove, elements: remove}, {op: opInsert, elements: insert}}

	for _, batch := range batches {
		for _, chunk := range chunkElements(batch.elements, changesChunkSize) {
			query, args, err = buildInsertChangesQuery(f.builder, key, revision, batch.op, chunk)
			if err != nil {
				return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return revision, nil
}
