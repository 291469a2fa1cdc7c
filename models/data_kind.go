// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// DataKind is the shape of a dataset. It selects the API endpoint, the local
// table and the element type.
type DataKind string

const (
	// DataKindHashPrefixSet is a set of short hex hash prefixes.
	DataKindHashPrefixSet DataKind = "hashPrefixSet"
	// DataKindFilterSet is a set of (hashPrefix, regex) rules.
	DataKindFilterSet DataKind = "filterSet"
)

// AllDataKinds returns every known data kind in a stable order.
func AllDataKinds() []DataKind {
	return []DataKind{DataKindHashPrefixSet, DataKindFilterSet}
}

// ParseDataKind converts a configuration or URL value into a [DataKind].
// Both the dataset name and the API path segment are accepted.
func ParseDataKind(s string) (DataKind, error) {
	switch s {
	case string(DataKindHashPrefixSet), "hashPrefix":
		return DataKindHashPrefixSet, nil
	case string(DataKindFilterSet):
		return DataKindFilterSet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDataKind, s)
	}
}

// APIPath returns the API path segment serving changesets of this kind.
func (k DataKind) APIPath() string {
	switch k {
	case DataKindHashPrefixSet:
		return "hashPrefix"
	default:
		return string(k)
	}
}

func (k DataKind) String() string {
	return string(k)
}

// DataKey identifies one independently versioned dataset.
type DataKey struct {
	ThreatKind ThreatKind
	DataKind   DataKind
}

func (k DataKey) String() string {
	return k.ThreatKind.String() + "/" + k.DataKind.String()
}

// DataKeysFor returns the cross product of the given data kinds and threat
// kinds, data kind major.
func DataKeysFor(dataKinds []DataKind, threatKinds []ThreatKind) []DataKey {
	keys := make([]DataKey, 0, len(dataKinds)*len(threatKinds))
	for _, dataKind := range dataKinds {
		for _, threatKind := range threatKinds {
			keys = append(keys, DataKey{ThreatKind: threatKind, DataKind: dataKind})
		}
	}
	return keys
}
