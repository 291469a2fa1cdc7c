// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns an error only when serving fails.
	Run(ctx context.Context) error
}
