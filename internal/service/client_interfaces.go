// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-threat-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// UpdateCoordinator brings one local dataset up to date with the API.
type UpdateCoordinator interface {
	// UpdateDataKey fetches the changes of key since the stored revision and
	// applies them atomically. A threat kind that is not currently supported
	// is skipped without any network or storage access and reports nil.
	//
	// Failures match [ErrTransportFailure], [ErrDecodeFailure] or
	// [ErrStorageFailure]. The coordinator never retries.
	UpdateDataKey(ctx context.Context, key models.DataKey) error
}

// BatchRunner updates the requested data kinds once for every supported
// threat kind.
type BatchRunner interface {
	// Run returns [ErrAllUpdatesFailed] when no single key could be updated.
	Run(ctx context.Context, kinds ...models.DataKind) error
}

// SchedulingStrategy is the way the client drives updates: a long-lived
// periodic scheduler or a one-shot batch.
type SchedulingStrategy interface {
	// Run blocks until the strategy is done or ctx is cancelled.
	Run(ctx context.Context) error
}
