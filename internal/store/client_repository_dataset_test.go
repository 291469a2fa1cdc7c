// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/models"
)

var (
	phishingHashPrefixes = models.DataKey{ThreatKind: models.ThreatKindPhishing, DataKind: models.DataKindHashPrefixSet}
	malwareFilters       = models.DataKey{ThreatKind: models.ThreatKindMalware, DataKind: models.DataKindFilterSet}
	fixedNow             = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newTestDataSetRepo(t *testing.T) (*dataSetRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &dataSetRepository{
		DB:  newSQLiteDB(db, logger.Nop()),
		now: func() time.Time { return fixedNow },
	}
	return repo, mock
}

func TestCurrentRevision_Stored(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectQuery(`SELECT revision FROM dataset_revisions WHERE data_kind = \? AND threat_kind = \?`).
		WithArgs("hashPrefixSet", "phishing").
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(5))

	revision, err := repo.CurrentRevision(context.Background(), phishingHashPrefixes)
	require.NoError(t, err)
	assert.Equal(t, int64(5), revision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrentRevision_UnseenKeyIsZero(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectQuery(`SELECT revision FROM dataset_revisions`).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}))

	revision, err := repo.CurrentRevision(context.Background(), phishingHashPrefixes)
	require.NoError(t, err)
	assert.Zero(t, revision)
}

func TestCurrentRevision_QueryError(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectQuery(`SELECT revision FROM dataset_revisions`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.CurrentRevision(context.Background(), phishingHashPrefixes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestApplyChangeSet_HashPrefixes(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM hash_prefixes WHERE threat_kind = \? AND hash_prefix IN \(\?\)`).
		WithArgs("phishing", "cd34").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT OR IGNORE INTO hash_prefixes \(threat_kind,hash_prefix\) VALUES \(\?,\?\)`).
		WithArgs("phishing", "ab12").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO dataset_revisions .* ON CONFLICT`).
		WithArgs("phishing", "hashPrefixSet", int64(7), fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ApplyChangeSet(context.Background(), phishingHashPrefixes, models.ChangeSet{
		Revision: 7,
		Insert:   []models.Element{{HashPrefix: "ab12"}},
		Remove:   []models.Element{{HashPrefix: "cd34"}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyChangeSet_ReplaceClearsFirst(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM filter_rules WHERE threat_kind = \?$`).
		WithArgs("malware").
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec(`INSERT OR IGNORE INTO filter_rules \(threat_kind,hash_prefix,regex\)`).
		WithArgs("malware", "aa11", ".*").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO dataset_revisions`).
		WithArgs("malware", "filterSet", int64(3), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ApplyChangeSet(context.Background(), malwareFilters, models.ChangeSet{
		Revision: 3,
		Insert:   []models.Element{{HashPrefix: "aa11", Regex: ".*"}},
		Replace:  true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestApplyChangeSet_RevisionOnlyBump verifies that an empty changeset with a
// new revision still stores the revision.
func TestApplyChangeSet_RevisionOnlyBump(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO dataset_revisions`).
		WithArgs("phishing", "hashPrefixSet", int64(6), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ApplyChangeSet(context.Background(), phishingHashPrefixes, models.ChangeSet{Revision: 6})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestApplyChangeSet_FailureRollsBack verifies that a failure after some
// statements succeeded rolls the transaction back and never stores the
// revision.
func TestApplyChangeSet_FailureRollsBack(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM hash_prefixes`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT OR IGNORE INTO hash_prefixes`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ApplyChangeSet(context.Background(), phishingHashPrefixes, models.ChangeSet{
		Revision: 7,
		Insert:   []models.Element{{HashPrefix: "ab12"}},
		Remove:   []models.Element{{HashPrefix: "cd34"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyChangeSet_CommitError(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO dataset_revisions`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(assert.AnError)

	err := repo.ApplyChangeSet(context.Background(), phishingHashPrefixes, models.ChangeSet{Revision: 1})
	assert.ErrorIs(t, err, ErrCommittingTransaction)
}

func TestApplyChangeSet_BeginError(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	err := repo.ApplyChangeSet(context.Background(), phishingHashPrefixes, models.ChangeSet{Revision: 1})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestApplyChangeSet_UnsupportedDataKind(t *testing.T) {
	repo, mock := newTestDataSetRepo(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	key := models.DataKey{ThreatKind: models.ThreatKindScam, DataKind: "bloomFilter"}
	err := repo.ApplyChangeSet(context.Background(), key, models.ChangeSet{
		Revision: 1,
		Insert:   []models.Element{{HashPrefix: "ab"}},
	})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.ErrorIs(t, err, ErrUnsupportedDataKind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── SQLite integration ────────────────────────────────────────────────────────

func openTestSQLite(t *testing.T) *DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "data", "threats.db")

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func hashPrefixesOf(t *testing.T, db *DB, threat models.ThreatKind) []string {
	t.Helper()
	rows, err := db.Query(`SELECT hash_prefix FROM hash_prefixes WHERE threat_kind = ?`, threat.String())
	require.NoError(t, err)
	defer rows.Close()

	var prefixes []string
	for rows.Next() {
		var p string
		require.NoError(t, rows.Scan(&p))
		prefixes = append(prefixes, p)
	}
	require.NoError(t, rows.Err())
	sort.Strings(prefixes)
	return prefixes
}

func TestDataSetRepository_SQLiteScenario(t *testing.T) {
	ctx := context.Background()
	db := openTestSQLite(t)
	repo := NewDataSetRepository(db)

	revision, err := repo.CurrentRevision(ctx, phishingHashPrefixes)
	require.NoError(t, err)
	assert.Zero(t, revision)

	require.NoError(t, repo.ApplyChangeSet(ctx, phishingHashPrefixes, models.ChangeSet{
		Revision: 5,
		Insert:   []models.Element{{HashPrefix: "cd34"}, {HashPrefix: "ef56"}},
	}))

	require.NoError(t, repo.ApplyChangeSet(ctx, phishingHashPrefixes, models.ChangeSet{
		Revision: 7,
		Insert:   []models.Element{{HashPrefix: "ab12"}},
		Remove:   []models.Element{{HashPrefix: "cd34"}},
	}))

	revision, err = repo.CurrentRevision(ctx, phishingHashPrefixes)
	require.NoError(t, err)
	assert.Equal(t, int64(7), revision)
	assert.Equal(t, []string{"ab12", "ef56"}, hashPrefixesOf(t, db, models.ThreatKindPhishing))

	// other keys are untouched
	revision, err = repo.CurrentRevision(ctx, models.DataKey{ThreatKind: models.ThreatKindMalware, DataKind: models.DataKindHashPrefixSet})
	require.NoError(t, err)
	assert.Zero(t, revision)

	// re-applying the same changeset converges to the same state
	require.NoError(t, repo.ApplyChangeSet(ctx, phishingHashPrefixes, models.ChangeSet{
		Revision: 7,
		Insert:   []models.Element{{HashPrefix: "ab12"}},
		Remove:   []models.Element{{HashPrefix: "cd34"}},
	}))
	assert.Equal(t, []string{"ab12", "ef56"}, hashPrefixesOf(t, db, models.ThreatKindPhishing))

	require.NoError(t, repo.ApplyChangeSet(ctx, phishingHashPrefixes, models.ChangeSet{
		Revision: 9,
		Insert:   []models.Element{{HashPrefix: "0001"}},
		Replace:  true,
	}))
	assert.Equal(t, []string{"0001"}, hashPrefixesOf(t, db, models.ThreatKindPhishing))
}

func TestDataSetRepository_SQLiteLargeChangeSet(t *testing.T) {
	ctx := context.Background()
	db := openTestSQLite(t)
	repo := NewDataSetRepository(db)

	insert := make([]models.Element, 0, 1000)
	for i := range 1000 {
		insert = append(insert, models.Element{HashPrefix: hexPrefix(i), Regex: "^https://example\\.com/"})
	}

	require.NoError(t, repo.ApplyChangeSet(ctx, malwareFilters, models.ChangeSet{Revision: 1, Insert: insert}))
	require.NoError(t, repo.ApplyChangeSet(ctx, malwareFilters, models.ChangeSet{Revision: 2, Remove: insert[:600]}))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM filter_rules WHERE threat_kind = 'malware'`).Scan(&count))
	assert.Equal(t, 400, count)
}

func hexPrefix(i int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[(i>>12)&0xf], digits[(i>>8)&0xf], digits[(i>>4)&0xf], digits[i&0xf]})
}
