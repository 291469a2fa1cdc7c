// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublishRequest is the body of a revision publish call on the authority
// server. A new revision is created from the delta.
type PublishRequest struct {
	// DataKind is taken from the request path.
	DataKind DataKind   `json:"-"`
	Category ThreatKind `json:"category"`
	Insert   []Element  `json:"insert"`
	Remove   []Element  `json:"remove"`
}

// PublishResponse reports the revision created by a publish call.
type PublishResponse struct {
	Revision int64 `json:"revision"`
}

// RegisterMatchesRequest adds full-hash matches to the authority server.
type RegisterMatchesRequest struct {
	Matches []Match `json:"matches"`
}
