// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-threat-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DataSetRepository is the local dataset storage of the sync client.
//
// CurrentRevision returns 0 for a key that was never stored.
// ApplyChangeSet is all-or-nothing: elements and revision change together or
// not at all.
type DataSetRepository interface {
	CurrentRevision(ctx context.Context, key models.DataKey) (int64, error)
	ApplyChangeSet(ctx context.Context, key models.DataKey, changeSet models.ChangeSet) error
}

// UpdateInfoRepository persists when each data kind was last updated.
type UpdateInfoRepository interface {
	GetUpdateInfo(ctx context.Context) (models.UpdateInfo, error)
	SetLastUpdated(ctx context.Context, at time.Time, kinds ...models.DataKind) error
}

// KeyValueStore is a small persistent map of JSON encodable values.
type KeyValueStore interface {
	// Get decodes the value of key into dst and reports whether it existed.
	Get(key string, dst any) (bool, error)
	Set(key string, value any) error
}
