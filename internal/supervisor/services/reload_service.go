// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kalainayam/internal/dataset"
)

// Reloader publishes a fresh dataset snapshot.
type Reloader interface {
	Reload(ctx context.Context) (*dataset.Snapshot, error)
}

// reloadTimeout bounds a single scheduled reload.
const reloadTimeout = 5 * time.Minute

// ReloadService reloads the datasets on a fixed interval. A failed reload is
// logged and the previous snapshot keeps serving.
type ReloadService struct {
	reloader Reloader
	interval time.Duration
	logger   zerolog.Logger
}

// NewReloadService creates a reload service. interval must be positive.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewReloadService(reloader Reloader, interval time.Duration, logger zerolog.Logger) *ReloadService {
	return &ReloadService{
		reloader: reloader,
		interval: interval,
		logger:   logger.With().Str("service", "dataset-reload").Logger(),
	}
}

// Serve implements suture.Service.
func (s *ReloadService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("Dataset reload service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.reload(ctx)
		}
	}
}

func (s *ReloadService) reload(ctx context.Context) {
	reloadCtx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	start := time.Now()
	snap, err := s.reloader.Reload(reloadCtx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Scheduled dataset reload failed")
	}
	if snap != nil {
		s.logger.Debug().
			Uint64("version", snap.Version).
			Dur("duration", time.Since(start)).
			Msg("Scheduled dataset reload finished")
	}
}

func (s *ReloadService) String() string {
	return "dataset-reload"
}
