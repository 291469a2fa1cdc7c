// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote threat intelligence API.
//
// [Transport] executes a single authenticated GET against the API and returns
// the raw body; [ThreatIntelAPI] builds the requests for changesets and
// full-hash matches on top of it and decodes the answers.
//
// Every failure to obtain a body matches [ErrTransport] with [errors.Is]. The
// offline case additionally matches [ErrNoConnectivity], an exhausted time
// budget [ErrTimeout] and non-2xx answers the sentinel of their status code.
// A body that cannot be decoded matches [ErrDecode].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-threat-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transport executes API requests. Implementations are safe for concurrent
// use.
type Transport interface {
	// Execute performs req and returns the body of a 2xx answer.
	Execute(ctx context.Context, req models.APIRequest) ([]byte, error)
}

// ThreatIntelAPI is a stateless client of the threat intelligence API.
type ThreatIntelAPI interface {
	// FetchChangeSet returns the changes of dataKind for threatKind since
	// knownRevision.
	FetchChangeSet(ctx context.Context, threatKind models.ThreatKind, dataKind models.DataKind, knownRevision int64) (models.ChangeSet, error)

	// FetchMatches returns the full-hash matches for hashPrefix.
	FetchMatches(ctx context.Context, hashPrefix string) ([]models.Match, error)
}
