// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeSet is the delta that brings a local dataset from a known revision to
// Revision. Insert and Remove are disjoint.
//
// Replace asks the receiver to drop every local element of the key before
// inserting, which the authority uses when the client's revision is unknown.
type ChangeSet struct {
	Revision int64     `json:"revision"`
	Insert   []Element `json:"insert"`
	Remove   []Element `json:"remove"`
	Replace  bool      `json:"replace,omitempty"`
}

// IsEmpty reports whether applying the changeset would not touch any element.
// An empty changeset may still carry a new revision.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Insert) == 0 && len(c.Remove) == 0 && !c.Replace
}

// DataSet is a fully materialized dataset at Revision.
type DataSet struct {
	Revision int64     `json:"revision"`
	Elements []Element `json:"elements"`
}
