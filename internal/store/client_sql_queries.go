// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-threat-sync/models"
)

const (
	revisionsTable    = "dataset_revisions"
	hashPrefixesTable = "hash_prefixes"
	filterRulesTable  = "filter_rules"
)

// elementsChunkSize keeps multi-row statements below SQLite's default
// limit of 999 bound variables.
const elementsChunkSize = 250

func elementsTable(kind models.DataKind) (string, error) {
	switch kind {
	case models.DataKindHashPrefixSet:
		return hashPrefixesTable, nil
	case models.DataKindFilterSet:
		return filterRulesTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDataKind, kind)
	}
}

func buildSelectRevisionQuery(b sq.StatementBuilderType, key models.DataKey) (string, []any, error) {
	return b.Select("revision").
		From(revisionsTable).
		Where(sq.Eq{
			"threat_kind": key.ThreatKind.String(),
			"data_kind":   key.DataKind.String(),
		}).
		ToSql()
}

func buildUpsertRevisionQuery(b sq.StatementBuilderType, key models.DataKey, revision int64, at time.Time) (string, []any, error) {
	return b.Insert(revisionsTable).
		Columns("threat_kind", "data_kind", "revision", "updated_at").
		Values(key.ThreatKind.String(), key.DataKind.String(), revision, at).
		Suffix("ON CONFLICT (threat_kind, data_kind) DO UPDATE SET revision = excluded.revision, updated_at = excluded.updated_at").
		ToSql()
}

func buildClearElementsQuery(b sq.StatementBuilderType, key models.DataKey) (string, []any, error) {
	table, err := elementsTable(key.DataKind)
	if err != nil {
		return "", nil, err
	}

	return b.Delete(table).
		Where(sq.Eq{"threat_kind": key.ThreatKind.String()}).
		ToSql()
}

func buildInsertElementsQuery(b sq.StatementBuilderType, key models.DataKey, elements []models.Element) (string, []any, error) {
	table, err := elementsTable(key.DataKind)
	if err != nil {
		return "", nil, err
	}

	query := b.Insert(table).Options("OR IGNORE")
	if key.DataKind == models.DataKindFilterSet {
		query = query.Columns("threat_kind", "hash_prefix", "regex")
		for _, e := range elements {
			query = query.Values(key.ThreatKind.String(), e.HashPrefix, e.Regex)
		}
	} else {
		query = query.Columns("threat_kind", "hash_prefix")
		for _, e := range elements {
			query = query.Values(key.ThreatKind.String(), e.HashPrefix)
		}
	}

	return query.ToSql()
}

func buildDeleteElementsQuery(b sq.StatementBuilderType, key models.DataKey, elements []models.Element) (string, []any, error) {
	table, err := elementsTable(key.DataKind)
	if err != nil {
		return "", nil, err
	}

	query := b.Delete(table).Where(sq.Eq{"threat_kind": key.ThreatKind.String()})
	if key.DataKind == models.DataKindFilterSet {
		rules := make(sq.Or, 0, len(elements))
		for _, e := range elements {
			rules = append(rules, sq.And{sq.Eq{"hash_prefix": e.HashPrefix}, sq.Eq{"regex": e.Regex}})
		}
		query = query.Where(rules)
	} else {
		prefixes := make([]string, 0, len(elements))
		for _, e := range elements {
			prefixes = append(prefixes, e.HashPrefix)
		}
		query = query.Where(sq.Eq{"hash_prefix": prefixes})
	}

	return query.ToSql()
}

func chunkElements(elements []models.Element, size int) [][]models.Element {
	chunks := make([][]models.Element, 0, (len(elements)+size-1)/size)
	for start := 0; start < len(elements); start += size {
		end := min(start+size, len(elements))
		chunks = append(chunks, elements[start:end])
	}
	return chunks
}

// statement carries the result of a build*Query helper so it can be passed
// around as one value.
type statement struct {
	query string
	args  []any
	err   error
}

func newStatement(query string, args []any, err error) statement {
	return statement{query: query, args: args, err: err}
}
