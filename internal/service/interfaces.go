// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-threat-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FeedService serves the revision log of the authority server.
type FeedService interface {
	// ChangeSet returns the folded changes of key since knownRevision.
	ChangeSet(ctx context.Context, key models.DataKey, knownRevision int64) (models.ChangeSet, error)
	// Publish appends a revision built from the request and returns its number.
	Publish(ctx context.Context, req models.PublishRequest) (int64, error)

	Matches(ctx context.Context, hashPrefix string) ([]models.Match, error)
	RegisterMatches(ctx context.Context, req models.RegisterMatchesRequest) error
}

type AuthService interface {
	// CreateToken issues a bearer token for clientID.
	CreateToken(ctx context.Context, clientID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
