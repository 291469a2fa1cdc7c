// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/models"
)

// HashPrefixQuery is the hashPrefix parameter of a matches lookup.
type HashPrefixQuery string

// sha256HexLength is the length of a hex encoded SHA-256 digest.
const sha256HexLength = 64

// FeedValidator checks the payloads accepted by the authority server.
type FeedValidator struct{}

func NewFeedValidator() Validator {
	return &FeedValidator{}
}

func (v *FeedValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PublishRequest:
		return v.validatePublishRequest(ctx, value)
	case *models.PublishRequest:
		return v.validatePublishRequest(ctx, *value)

	case models.RegisterMatchesRequest:
		return v.validateRegisterMatchesRequest(ctx, value)
	case *models.RegisterMatchesRequest:
		return v.validateRegisterMatchesRequest(ctx, *value)

	case HashPrefixQuery:
		return validateHashPrefixQuery(string(value))

	default:
		return ErrUnsupportedType
	}
}

// validatePublishRequest allows an empty delta, which publishes a bare
// revision bump.
func (v *FeedValidator) validatePublishRequest(_ context.Context, req models.PublishRequest) error {
	if _, err := models.ParseDataKind(req.DataKind.String()); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDataKind, req.DataKind)
	}
	if _, err := models.ParseThreatKind(req.Category.String()); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if err := validateElements(req.DataKind, req.Insert); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	if err := validateElements(req.DataKind, req.Remove); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	return validateDisjoint(req.Insert, req.Remove)
}

func (v *FeedValidator) validateRegisterMatchesRequest(_ context.Context, req models.RegisterMatchesRequest) error {
	if len(req.Matches) == 0 {
		return ErrEmptyMatches
	}

	for i, m := range req.Matches {
		if len(m.Hash) != sha256HexLength || !utils.IsLowerHex(m.Hash) {
			return fmt.Errorf("%w: match %d: hash must be a lowercase hex SHA-256 digest", ErrInvalidMatch, i)
		}
		if _, err := models.ParseThreatKind(m.Category.String()); err != nil {
			return fmt.Errorf("%w: match %d: %w", ErrInvalidMatch, i, err)
		}
		if m.Hostname == "" {
			return fmt.Errorf("%w: match %d: hostname is required", ErrInvalidMatch, i)
		}
	}
	return nil
}

// validateHashPrefixQuery requires at least [utils.HashPrefixLength] hex
// characters so the lookup can use the stored prefix column.
func validateHashPrefixQuery(hashPrefix string) error {
	if len(hashPrefix) < utils.HashPrefixLength || len(hashPrefix) > sha256HexLength || !utils.IsLowerHex(hashPrefix) {
		return fmt.Errorf("%w: %q", ErrInvalidHashPrefix, hashPrefix)
	}
	return nil
}
