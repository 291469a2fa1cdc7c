// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-threat-sync/models"
)

func TestFeedValidator_PublishRequest(t *testing.T) {
	v := NewFeedValidator()
	ctx := context.Background()

	valid := models.PublishRequest{
		DataKind: models.DataKindHashPrefixSet,
		Category: models.ThreatKindPhishing,
		Insert:   prefixes("ab12"),
		Remove:   prefixes("cd34"),
	}
	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, &valid))

	bump := models.PublishRequest{DataKind: models.DataKindFilterSet, Category: models.ThreatKindScam}
	assert.NoError(t, v.Validate(ctx, bump))

	badCategory := valid
	badCategory.Category = "spam"
	assert.ErrorIs(t, v.Validate(ctx, badCategory), ErrInvalidCategory)

	badKind := valid
	badKind.DataKind = "bloom"
	assert.ErrorIs(t, v.Validate(ctx, badKind), ErrInvalidDataKind)

	overlapping := valid
	overlapping.Remove = prefixes("ab12")
	assert.ErrorIs(t, v.Validate(ctx, overlapping), ErrOverlappingElements)

	filterWithoutRegex := valid
	filterWithoutRegex.DataKind = models.DataKindFilterSet
	assert.ErrorIs(t, v.Validate(ctx, filterWithoutRegex), ErrInvalidElement)
}

func TestFeedValidator_RegisterMatches(t *testing.T) {
	v := NewFeedValidator()
	ctx := context.Background()
	hash := strings.Repeat("ab", 32)

	valid := models.RegisterMatchesRequest{Matches: []models.Match{{
		Hostname: "evil.example",
		URL:      "evil.example/login",
		Hash:     hash,
		Category: models.ThreatKindPhishing,
	}}}
	assert.NoError(t, v.Validate(ctx, valid))

	assert.ErrorIs(t, v.Validate(ctx, models.RegisterMatchesRequest{}), ErrEmptyMatches)

	shortHash := models.RegisterMatchesRequest{Matches: []models.Match{{Hostname: "a", Hash: "ab12", Category: models.ThreatKindScam}}}
	assert.ErrorIs(t, v.Validate(ctx, shortHash), ErrInvalidMatch)

	badCategory := models.RegisterMatchesRequest{Matches: []models.Match{{Hostname: "a", Hash: hash, Category: "spam"}}}
	assert.ErrorIs(t, v.Validate(ctx, badCategory), ErrInvalidMatch)

	noHost := models.RegisterMatchesRequest{Matches: []models.Match{{Hash: hash, Category: models.ThreatKindScam}}}
	assert.ErrorIs(t, v.Validate(ctx, &noHost), ErrInvalidMatch)
}

func TestFeedValidator_HashPrefixQuery(t *testing.T) {
	v := NewFeedValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, HashPrefixQuery("ba7816bf")))
	assert.NoError(t, v.Validate(ctx, HashPrefixQuery(strings.Repeat("0", 64))))

	for _, bad := range []string{"", "ab12", "BA7816BF", "ba7816bz", strings.Repeat("0", 65)} {
		assert.ErrorIs(t, v.Validate(ctx, HashPrefixQuery(bad)), ErrInvalidHashPrefix, bad)
	}

	assert.ErrorIs(t, v.Validate(ctx, "ba7816bf"), ErrUnsupportedType)
}
