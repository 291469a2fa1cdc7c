// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/models"
)

const (
	headsTable      = "dataset_heads"
	changesTable    = "dataset_changes"
	fullHashesTable = "full_hashes"
)

const (
	opInsert = 1
	opRemove = -1
)

// changesChunkSize keeps a multi-row insert of six columns far below the
// PostgreSQL limit of 65535 parameters.
const changesChunkSize = 1000

func buildSelectHeadQuery(b sq.StatementBuilderType, key models.DataKey) (string, []any, error) {
	return b.Select("revision").
		From(headsTable).
		Where(sq.Eq{
			"threat_kind": key.ThreatKind.String(),
			"data_kind":   key.DataKind.String(),
		}).
		ToSql()
}

func buildNextHeadQuery(b sq.StatementBuilderType, key models.DataKey) (string, []any, error) {
	return b.Insert(headsTable).
		Columns("threat_kind", "data_kind", "revision").
		Values(key.ThreatKind.String(), key.DataKind.String(), 1).
		Suffix("ON CONFLICT (threat_kind, data_kind) DO UPDATE SET revision = dataset_heads.revision + 1, updated_at = now() RETURNING revision").
		ToSql()
}

// buildSelectChangesQuery selects the changes in (after, upTo]; after < 0
// selects from the beginning.
func buildSelectChangesQuery(b sq.StatementBuilderType, key models.DataKey, after, upTo int64) (string, []any, error) {
	query := b.Select("revision", "op", "hash_prefix", "regex").
		From(changesTable).
		Where(sq.Eq{
			"threat_kind": key.ThreatKind.String(),
			"data_kind":   key.DataKind.String(),
		}).
		Where(sq.LtOrEq{"revision": upTo})
	if after >= 0 {
		query = query.Where(sq.Gt{"revision": after})
	}

	return query.OrderBy("revision", "id").ToSql()
}

func buildInsertChangesQuery(b sq.StatementBuilderType, key models.DataKey, revision int64, op int, elements []models.Element) (string, []any, error) {
	query := b.Insert(changesTable).
		Columns("threat_kind", "data_kind", "revision", "op", "hash_prefix", "regex")
	for _, e := range elements {
		query = query.Values(key.ThreatKind.String(), key.DataKind.String(), revision, op, e.HashPrefix, e.Regex)
	}
	return query.ToSql()
}

func buildSelectMatchesQuery(b sq.StatementBuilderType, hashPrefix string) (string, []any, error) {
	return b.Select("hash", "category", "hostname", "url", "regex").
		From(fullHashesTable).
		Where(sq.Eq{"hash_prefix": utils.HashPrefix(hashPrefix)}).
		Where(sq.Like{"hash": hashPrefix + "%"}).
		OrderBy("hash", "category").
		ToSql()
}

func buildUpsertMatchesQuery(b sq.StatementBuilderType, matches []models.Match) (string, []any, error) {
	query := b.Insert(fullHashesTable).
		Columns("hash", "hash_prefix", "category", "hostname", "url", "regex")
	for _, m := range matches {
		query = query.Values(m.Hash, utils.HashPrefix(m.Hash), m.Category.String(), m.Hostname, m.URL, m.Regex)
	}
	return query.
		Suffix("ON CONFLICT (hash, category) DO UPDATE SET hostname = excluded.hostname, url = excluded.url, regex = excluded.regex").
		ToSql()
}

type changeRow struct {
	revision int64
	op       int
	element  models.Element
}

// foldChanges collapses an ordered change log to the net effect of its last
// operation per element. With full set, only the elements present at the end
// are returned, as inserts.
func foldChanges(rows []changeRow, full bool) (insert, remove []models.Element) {
	lastOp := make(map[models.Element]int, len(rows))
	order := make([]models.Element, 0, len(rows))

	for _, row := range rows {
		if _, seen := lastOp[row.element]; !seen {
			order = append(order, row.element)
		}
		lastOp[row.element] = row.op
	}

	insert = make([]models.Element, 0, len(order))
	remove = make([]models.Element, 0)
	for _, e := range order {
		switch {
		case lastOp[e] == opInsert:
			insert = append(insert, e)
		case !full:
			remove = append(remove, e)
		}
	}
	return insert, remove
}
