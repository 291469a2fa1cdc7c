// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ThreatKind is the category of threat a dataset protects against. It is the
// partition key for every dataset and is sent to the API as "category".
type ThreatKind string

const (
	ThreatKindPhishing ThreatKind = "phishing"
	ThreatKindMalware  ThreatKind = "malware"
	ThreatKindScam     ThreatKind = "scam"
)

// AllThreatKinds returns every known threat kind in a stable order.
func AllThreatKinds() []ThreatKind {
	return []ThreatKind{ThreatKindPhishing, ThreatKindMalware, ThreatKindScam}
}

// ParseThreatKind converts the wire representation into a [ThreatKind].
func ParseThreatKind(s string) (ThreatKind, error) {
	switch kind := ThreatKind(s); kind {
	case ThreatKindPhishing, ThreatKindMalware, ThreatKindScam:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownThreatKind, s)
	}
}

func (k ThreatKind) String() string {
	return string(k)
}
