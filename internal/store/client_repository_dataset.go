// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/models"
)

type dataSetRepository struct {
	*DB
	now func() time.Time
}

// NewDataSetRepository returns the SQLite backed [DataSetRepository].
func NewDataSetRepository(db *DB) DataSetRepository {
	return &dataSetRepository{
		DB:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *dataSetRepository) CurrentRevision(ctx context.Context, key models.DataKey) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRevisionQuery(r.builder, key)
	if err != nil {
		log.Err(err).Str("func", "dataSetRepository.CurrentRevision").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var revision int64
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "dataSetRepository.CurrentRevision").
			Str("data_key", key.String()).
			Msg("failed to read dataset revision")
		return 0, fmt.Errorf("%w: read revision of %s: %w", ErrExecutingQuery, key, err)
	}

	return revision, nil
}

// ApplyChangeSet runs removals, inserts and the revision bump in a single
// transaction. Inserting an element that already exists and removing one
// that is absent are both no-ops.
func (r *dataSetRepository) ApplyChangeSet(ctx context.Context, key models.DataKey, changeSet models.ChangeSet) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "dataSetRepository.ApplyChangeSet").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "dataSetRepository.ApplyChangeSet").Msg("failed to rollback transaction")
			}
		}
	}()

	if changeSet.Replace {
		if err = r.exec(ctx, tx, newStatement(buildClearElementsQuery(r.builder, key))); err != nil {
			log.Err(err).Str("func", "dataSetRepository.ApplyChangeSet").Str("data_key", key.String()).Msg("failed to clear dataset")
			return err
		}
	}

	for _, chunk := range chunkElements(changeSet.Remove, elementsChunkSize) {
		if err = r.exec(ctx, tx, newStatement(buildDeleteElementsQuery(r.builder, key, chunk))); err != nil {
			log.Err(err).Str("func", "dataSetRepository.ApplyChangeSet").Str("data_key", key.String()).Msg("failed to remove elements")
			return err
		}
	}

	for _, chunk := range chunkElements(changeSet.Insert, elementsChunkSize) {
		if err = r.exec(ctx, tx, newStatement(buildInsertElementsQuery(r.builder, key, chunk))); err != nil {
			log.Err(err).Str("func", "dataSetRepository.ApplyChangeSet").Str("data_key", key.String()).Msg("failed to insert elements")
			return err
		}
	}

	if err = r.exec(ctx, tx, newStatement(buildUpsertRevisionQuery(r.builder, key, changeSet.Revision, r.now()))); err != nil {
		log.Err(err).Str("func", "dataSetRepository.ApplyChangeSet").Str("data_key", key.String()).Msg("failed to store revision")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "dataSetRepository.ApplyChangeSet").Str("data_key", key.String()).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *dataSetRepository) exec(ctx context.Context, tx *sql.Tx, st statement) error {
	if st.err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, st.err)
	}

	if _, err := tx.ExecContext(ctx, st.query, st.args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
