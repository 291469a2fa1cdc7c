// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UpdateInfo records when each data kind was last updated successfully.
// A missing entry means the data kind was never updated on this device.
type UpdateInfo struct {
	LastUpdated map[DataKind]time.Time `json:"last_updated"`
}

// LastUpdate returns the last successful update time of kind.
func (u UpdateInfo) LastUpdate(kind DataKind) (time.Time, bool) {
	t, ok := u.LastUpdated[kind]
	return t, ok
}
