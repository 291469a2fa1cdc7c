// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/models"
)

// validateElements checks the shape of every element for dataKind. Filter
// regexes are opaque here: only their presence is checked.
func validateElements(dataKind models.DataKind, elements []models.Element) error {
	for i, e := range elements {
		if err := validateElement(dataKind, e); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func validateElement(dataKind models.DataKind, e models.Element) error {
	if !utils.IsLowerHex(e.HashPrefix) {
		return fmt.Errorf("%w: hash prefix %q is not lowercase hex", ErrInvalidElement, e.HashPrefix)
	}

	switch dataKind {
	case models.DataKindHashPrefixSet:
		if e.Regex != "" {
			return fmt.Errorf("%w: hash prefix %q carries a regex", ErrInvalidElement, e.HashPrefix)
		}
	case models.DataKindFilterSet:
		if e.Regex == "" {
			return fmt.Errorf("%w: filter %q has no regex", ErrInvalidElement, e.HashPrefix)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDataKind, dataKind)
	}
	return nil
}

// validateDisjoint fails when an element appears in both lists.
func validateDisjoint(insert, remove []models.Element) error {
	if len(insert) == 0 || len(remove) == 0 {
		return nil
	}

	inserted := make(map[models.Element]struct{}, len(insert))
	for _, e := range insert {
		inserted[e] = struct{}{}
	}
	for _, e := range remove {
		if _, ok := inserted[e]; ok {
			return fmt.Errorf("%w: %s", ErrOverlappingElements, e)
		}
	}
	return nil
}
