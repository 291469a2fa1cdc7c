// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Element is a single dataset entry. Hash prefix sets only use HashPrefix;
// filter sets carry a (HashPrefix, Regex) rule.
//
// On the wire a hash prefix is a bare JSON string and a filter rule is an
// object {"hashPrefix": "...", "regex": "..."}.
type Element struct {
	HashPrefix string
	Regex      string
}

type filterElementJSON struct {
	HashPrefix string `json:"hashPrefix"`
	Regex      string `json:"regex"`
}

// IsFilter reports whether the element is a filter rule.
func (e Element) IsFilter() bool {
	return e.Regex != ""
}

func (e Element) MarshalJSON() ([]byte, error) {
	if !e.IsFilter() {
		return json.Marshal(e.HashPrefix)
	}
	return json.Marshal(filterElementJSON{HashPrefix: e.HashPrefix, Regex: e.Regex})
}

func (e *Element) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ErrMalformedElement
	}

	switch b[0] {
	case '"':
		var prefix string
		if err := json.Unmarshal(b, &prefix); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedElement, err)
		}
		*e = Element{HashPrefix: prefix}
	case '{':
		var filter filterElementJSON
		if err := json.Unmarshal(b, &filter); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedElement, err)
		}
		*e = Element{HashPrefix: filter.HashPrefix, Regex: filter.Regex}
	default:
		return fmt.Errorf("%w: %s", ErrMalformedElement, b)
	}

	return nil
}

func (e Element) String() string {
	if !e.IsFilter() {
		return e.HashPrefix
	}
	return e.HashPrefix + " " + e.Regex
}
