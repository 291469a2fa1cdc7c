// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/service"
	"github.com/MKhiriev/go-threat-sync/internal/workers"
)

const shutdownTimeout = 5 * time.Second

// App runs the client in the configured mode.
type App struct {
	strategy   service.SchedulingStrategy
	background *workers.Workers
	mode       string

	logger *logger.Logger
}

// NewApp builds the client runtime. Background workers run alongside the
// scheduler in periodic mode and are skipped in batch mode.
func NewApp(services *service.ClientServices, background *workers.Workers, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || services.Strategy == nil {
		return nil, ErrNilServices
	}
	if background == nil {
		background = workers.New()
	}

	switch cfg.Mode {
	case config.ModePeriodic, config.ModeBatch:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	return &App{
		strategy:   services.Strategy,
		background: background,
		mode:       cfg.Mode,
		logger:     log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if a.mode == config.ModeBatch {
		a.logger.Info().Str("func", "App.Run").Msg("running batch update")
		if err := a.strategy.Run(ctx); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("batch update failed")
			return err
		}
		a.logger.Info().Str("func", "App.Run").Msg("batch update finished")
		return nil
	}

	a.logger.Info().Str("func", "App.Run").Int("background_workers", a.background.Len()).Msg("starting periodic updates")
	return a.background.Add("scheduler", a.strategy).Run(ctx)
}

// MetricsWorker serves srv until ctx is done and then shuts it down.
func MetricsWorker(srv *http.Server, log *logger.Logger) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) error {
		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("func", "MetricsWorker").Str("address", srv.Addr).Msg("serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics ListenAndServe: %w", err)
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics Shutdown: %w", err)
		}
		return <-errCh
	})
}
