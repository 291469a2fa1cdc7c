// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-threat-sync/models"
)

func TestFindMatches(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewMatchRepository(db)

	mock.ExpectQuery(`SELECT hash, category, hostname, url, regex FROM full_hashes`).
		WithArgs("ba7816bf", "ba7816bf%").
		WillReturnRows(sqlmock.NewRows([]string{"hash", "category", "hostname", "url", "regex"}).
			AddRow("ba7816bf8f01", "phishing", "evil.example", "evil.example/login", "").
			AddRow("ba7816bf9999", "malware", "bad.example", "bad.example/", "^bad"))

	matches, err := repo.FindMatches(context.Background(), "ba7816bf")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, models.Match{
		Hostname: "evil.example",
		URL:      "evil.example/login",
		Hash:     "ba7816bf8f01",
		Category: models.ThreatKindPhishing,
	}, matches[0])
	assert.Equal(t, models.ThreatKindMalware, matches[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindMatches_NoneIsEmptySlice(t *testing.T) {
	db, mock := newTestPostgresDB(t)

	mock.ExpectQuery(`SELECT hash`).
		WillReturnRows(sqlmock.NewRows([]string{"hash", "category", "hostname", "url", "regex"}))

	matches, err := NewMatchRepository(db).FindMatches(context.Background(), "00000000")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestFindMatches_QueryError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	mock.ExpectQuery(`SELECT hash`).WillReturnError(sql.ErrConnDone)

	_, err := NewMatchRepository(db).FindMatches(context.Background(), "00000000")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSaveMatches(t *testing.T) {
	db, mock := newTestPostgresDB(t)

	mock.ExpectExec(`INSERT INTO full_hashes`).
		WithArgs("ba7816bf8f01", "ba7816bf", "phishing", "evil.example", "evil.example/login", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewMatchRepository(db).SaveMatches(context.Background(), []models.Match{{
		Hostname: "evil.example",
		URL:      "evil.example/login",
		Hash:     "ba7816bf8f01",
		Category: models.ThreatKindPhishing,
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMatches_EmptyIsNoop(t *testing.T) {
	db, mock := newTestPostgresDB(t)

	require.NoError(t, NewMatchRepository(db).SaveMatches(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMatches_ExecError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	mock.ExpectExec(`INSERT INTO full_hashes`).WillReturnError(sql.ErrConnDone)

	err := NewMatchRepository(db).SaveMatches(context.Background(), []models.Match{{Hash: "ab12cd34", Category: models.ThreatKindScam}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
