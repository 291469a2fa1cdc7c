// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-threat-sync/models"
)

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func Test_buildDeleteElementsQuery_Filters(t *testing.T) {
	query, args, err := buildDeleteElementsQuery(sqliteBuilder, malwareFilters, []models.Element{
		{HashPrefix: "aa", Regex: "x"},
		{HashPrefix: "bb", Regex: "y"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"DELETE FROM filter_rules WHERE threat_kind = ? AND ((hash_prefix = ? AND regex = ?) OR (hash_prefix = ? AND regex = ?))",
		query)
	assert.Equal(t, []any{"malware", "aa", "x", "bb", "y"}, args)
}

func Test_buildInsertElementsQuery_HashPrefixes(t *testing.T) {
	query, args, err := buildInsertElementsQuery(sqliteBuilder, phishingHashPrefixes, []models.Element{
		{HashPrefix: "ab12"}, {HashPrefix: "cd34"},
	})
	require.NoError(t, err)

	assert.Equal(t, "INSERT OR IGNORE INTO hash_prefixes (threat_kind,hash_prefix) VALUES (?,?),(?,?)", query)
	assert.Equal(t, []any{"phishing", "ab12", "phishing", "cd34"}, args)
}

func Test_buildUpsertRevisionQuery(t *testing.T) {
	query, args, err := buildUpsertRevisionQuery(sqliteBuilder, phishingHashPrefixes, 7, fixedNow)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO dataset_revisions (threat_kind,data_kind,revision,updated_at) VALUES (?,?,?,?)")
	assert.Contains(t, query, "ON CONFLICT (threat_kind, data_kind) DO UPDATE SET revision = excluded.revision")
	assert.Equal(t, []any{"phishing", "hashPrefixSet", int64(7), fixedNow}, args)
}

func Test_chunkElements(t *testing.T) {
	elements := make([]models.Element, 7)

	chunks := chunkElements(elements, 3)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 3)
	assert.Len(t, chunks[2], 1)

	assert.Empty(t, chunkElements(nil, 3))
}
