// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/models"
)

type updateInfoRepository struct {
	kv KeyValueStore
}

// NewUpdateInfoRepository stores [models.UpdateInfo] in kv, one key per data
// kind.
func NewUpdateInfoRepository(kv KeyValueStore) UpdateInfoRepository {
	return &updateInfoRepository{kv: kv}
}

func lastUpdatedKey(kind models.DataKind) string {
	return "last_updated." + kind.String()
}

func (r *updateInfoRepository) GetUpdateInfo(ctx context.Context) (models.UpdateInfo, error) {
	info := models.UpdateInfo{LastUpdated: make(map[models.DataKind]time.Time)}

	for _, kind := range models.AllDataKinds() {
		var at time.Time
		ok, err := r.kv.Get(lastUpdatedKey(kind), &at)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "updateInfoRepository.GetUpdateInfo").
				Str("data_kind", kind.String()).
				Msg("failed to read last update date")
			return models.UpdateInfo{}, fmt.Errorf("read last update of %s: %w", kind, err)
		}
		if ok {
			info.LastUpdated[kind] = at
		}
	}

	return info, nil
}

func (r *updateInfoRepository) SetLastUpdated(ctx context.Context, at time.Time, kinds ...models.DataKind) error {
	for _, kind := range kinds {
		if err := r.kv.Set(lastUpdatedKey(kind), at.UTC()); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "updateInfoRepository.SetLastUpdated").
				Str("data_kind", kind.String()).
				Msg("failed to store last update date")
			return fmt.Errorf("store last update of %s: %w", kind, err)
		}
	}
	return nil
}
