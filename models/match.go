// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Match is a full-hash match returned by the matches endpoint for a hash
// prefix.
type Match struct {
	Hostname string     `json:"hostname"`
	URL      string     `json:"url"`
	Regex    string     `json:"regex"`
	Hash     string     `json:"hash"`
	Category ThreatKind `json:"category"`
}

// MatchesResponse is the envelope of the matches endpoint.
type MatchesResponse struct {
	Matches []Match `json:"matches"`
}
