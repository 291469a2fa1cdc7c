// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
)

// ClientStorages groups the persistence of the sync client: the SQLite
// datasets and the key-value update info.
type ClientStorages struct {
	DataSetRepository    DataSetRepository
	UpdateInfoRepository UpdateInfoRepository

	db *DB
}

// NewClientStorages opens the SQLite database, applies migrations and opens
// the update-info file.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv, err := NewFileKeyValueStore(cfg.UpdateInfoPath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open update info store: %w", err)
	}

	return &ClientStorages{
		DataSetRepository:    NewDataSetRepository(db),
		UpdateInfoRepository: NewUpdateInfoRepository(kv),
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
