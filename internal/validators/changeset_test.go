// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-threat-sync/models"
)

var (
	prefixKey = models.DataKey{ThreatKind: models.ThreatKindPhishing, DataKind: models.DataKindHashPrefixSet}
	filterKey = models.DataKey{ThreatKind: models.ThreatKindMalware, DataKind: models.DataKindFilterSet}
)

func prefixes(values ...string) []models.Element {
	elements := make([]models.Element, 0, len(values))
	for _, v := range values {
		elements = append(elements, models.Element{HashPrefix: v})
	}
	return elements
}

func TestChangeSetValidator_Valid(t *testing.T) {
	v := NewChangeSetValidator()
	require.NotNil(t, v)

	update := ChangeSetUpdate{
		Key:           prefixKey,
		KnownRevision: 5,
		ChangeSet:     models.ChangeSet{Revision: 7, Insert: prefixes("ab12"), Remove: prefixes("cd34")},
	}
	assert.NoError(t, v.Validate(context.Background(), update))
	assert.NoError(t, v.Validate(context.Background(), &update))

	filters := ChangeSetUpdate{
		Key: filterKey,
		ChangeSet: models.ChangeSet{Revision: 1, Insert: []models.Element{
			{HashPrefix: "ab12", Regex: `^https?://ab\.example/`},
		}},
	}
	assert.NoError(t, v.Validate(context.Background(), filters))
}

func TestChangeSetValidator_FilterRegexIsOpaque(t *testing.T) {
	v := NewChangeSetValidator()

	update := ChangeSetUpdate{
		Key:           filterKey,
		KnownRevision: 3,
		ChangeSet: models.ChangeSet{Revision: 4, Insert: []models.Element{
			{HashPrefix: "ab12", Regex: `^https?://(?!safe\.)example\.com/`},
			{HashPrefix: "cd34", Regex: `^(a+)\1$`},
		}},
	}
	assert.NoError(t, v.Validate(context.Background(), update))
}

func TestChangeSetValidator_Revision(t *testing.T) {
	v := NewChangeSetValidator()

	tests := []struct {
		name    string
		known   int64
		cs      models.ChangeSet
		wantErr error
	}{
		{name: "same revision", known: 5, cs: models.ChangeSet{Revision: 5}},
		{name: "negative", known: 0, cs: models.ChangeSet{Revision: -1}, wantErr: ErrNegativeRevision},
		{name: "stale", known: 5, cs: models.ChangeSet{Revision: 4}, wantErr: ErrStaleRevision},
		{name: "older replace is accepted", known: 9, cs: models.ChangeSet{Revision: 2, Replace: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), ChangeSetUpdate{Key: prefixKey, KnownRevision: tt.known, ChangeSet: tt.cs})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChangeSetValidator_Elements(t *testing.T) {
	v := NewChangeSetValidator()

	tests := []struct {
		name string
		key  models.DataKey
		cs   models.ChangeSet
	}{
		{name: "empty prefix", key: prefixKey, cs: models.ChangeSet{Revision: 1, Insert: prefixes("")}},
		{name: "upper case prefix", key: prefixKey, cs: models.ChangeSet{Revision: 1, Insert: prefixes("AB12")}},
		{name: "non hex prefix", key: prefixKey, cs: models.ChangeSet{Revision: 1, Remove: prefixes("zz")}},
		{name: "prefix with regex", key: prefixKey, cs: models.ChangeSet{Revision: 1, Insert: []models.Element{{HashPrefix: "ab12", Regex: "^a"}}}},
		{name: "filter without regex", key: filterKey, cs: models.ChangeSet{Revision: 1, Insert: prefixes("ab12")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), ChangeSetUpdate{Key: tt.key, ChangeSet: tt.cs})
			assert.ErrorIs(t, err, ErrInvalidElement)
		})
	}
}

func TestChangeSetValidator_Overlap(t *testing.T) {
	err := NewChangeSetValidator().Validate(context.Background(), ChangeSetUpdate{
		Key:       prefixKey,
		ChangeSet: models.ChangeSet{Revision: 1, Insert: prefixes("ab12", "ef56"), Remove: prefixes("ef56")},
	})
	assert.ErrorIs(t, err, ErrOverlappingElements)
}

func TestChangeSetValidator_Fields(t *testing.T) {
	v := NewChangeSetValidator()
	overlapping := ChangeSetUpdate{
		Key:       prefixKey,
		ChangeSet: models.ChangeSet{Revision: 1, Insert: prefixes("ab12"), Remove: prefixes("ab12")},
	}

	assert.NoError(t, v.Validate(context.Background(), overlapping, FieldRevision, FieldElements))
	assert.ErrorIs(t, v.Validate(context.Background(), overlapping, FieldDisjoint), ErrOverlappingElements)
	assert.ErrorIs(t, v.Validate(context.Background(), overlapping, "nope"), ErrUnknownField)
}

func TestChangeSetValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewChangeSetValidator().Validate(context.Background(), models.ChangeSet{}), ErrUnsupportedType)
}
