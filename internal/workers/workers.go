// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
)

type namedWorker struct {
	name   string
	worker Worker
}

// Workers runs a set of named workers together.
type Workers struct {
	workers []namedWorker
}

func New() *Workers {
	return &Workers{}
}

// Add registers worker under name. Nil workers are ignored.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker != nil {
		w.workers = append(w.workers, namedWorker{name: name, worker: worker})
	}
	return w
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all have returned. The first
// failing worker cancels the others; its error is returned prefixed with the
// worker name. Cancellation of ctx itself is not an error.
func (w *Workers) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	group, groupCtx := errgroup.WithContext(ctx)

	for _, nw := range w.workers {
		group.Go(func() error {
			log.Info().Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker started")

			err := nw.worker.Run(groupCtx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Err(err).Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker failed")
				return fmt.Errorf("%s: %w", nw.name, err)
			}

			log.Info().Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker stopped")
			return nil
		})
	}

	return group.Wait()
}
