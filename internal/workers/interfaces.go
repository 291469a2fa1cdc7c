// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background tasks of a process under
// one cancellation: feature file watchers, metrics endpoints, update
// schedulers and transport servers.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is cancelled or the task
// fails; returning nil after cancellation is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
