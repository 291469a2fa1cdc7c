// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
)

// DB is a database connection together with the dialect specific pieces
// repositories need: a placeholder aware statement builder, an error
// classifier and the schema migrator.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the embedded schema migrations of the connection dialect.
func (db *DB) Migrate() error {
	if db == nil || db.migrate == nil {
		return ErrNilDB
	}
	return db.migrate(db.DB)
}
