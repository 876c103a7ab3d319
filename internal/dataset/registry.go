// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

// Package dataset holds the loaded sales and review stores behind an atomic
// pointer. Reload builds fresh stores off to the side and publishes them with
// a single swap, so readers see either the old snapshot or the new one.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kalainayam/internal/metrics"
	"github.com/tomtom215/kalainayam/internal/records"
)

// Dataset names.
const (
	Sales   = "sales"
	Reviews = "reviews"
)

// TableLoader returns the raw table of one dataset.
type TableLoader interface {
	Load(ctx context.Context) (records.Table, error)
}

// Source describes one dataset. A nil Loader disables the dataset.
type Source struct {
	Name   string
	Format string
	Schema records.Schema
	Loader TableLoader
}

// Snapshot is an immutable pair of stores. Either store may be nil when the
// dataset is disabled or has never loaded successfully.
type Snapshot struct {
	Sales    *records.Store
	Reviews  *records.Store
	Version  uint64
	LoadedAt time.Time
}

// Registry publishes snapshots.
type Registry struct {
	sales   Source
	reviews Source
	logger  zerolog.Logger

	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	mu      sync.Mutex // serializes Reload
}

// NewRegistry creates an empty registry. Call Reload to populate it.
func NewRegistry(sales, reviews Source, logger zerolog.Logger) *Registry {
	if sales.Name == "" {
		sales.Name = Sales
	}
	if reviews.Name == "" {
		reviews.Name = Reviews
	}
	return &Registry{
		sales:   sales,
		reviews: reviews,
		logger:  logger.With().Str("component", "dataset").Logger(),
	}
}

// Current returns the published snapshot, or nil before the first
// successful load.
func (r *Registry) Current() *Snapshot {
	return r.current.Load()
}

// Ready reports whether any snapshot has been published.
func (r *Registry) Ready() bool {
	return r.current.Load() != nil
}

// Reload re-reads every enabled dataset. A dataset that fails keeps its
// previous store; the failures are joined into the returned error. A new
// snapshot is published when at least one dataset loaded.
func (r *Registry) Reload(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.current.Load()
	next := &Snapshot{}
	if prev != nil {
		next.Sales = prev.Sales
		next.Reviews = prev.Reviews
	}

	var errs []error
	loaded := 0

	if store, err := r.load(ctx, r.sales); err != nil {
		errs = append(errs, err)
	} else if store != nil {
		next.Sales = store
		loaded++
	}
	if store, err := r.load(ctx, r.reviews); err != nil {
		errs = append(errs, err)
	} else if store != nil {
		next.Reviews = store
		loaded++
	}

	if loaded == 0 {
		return prev, errors.Join(errs...)
	}

	next.Version = r.version.Add(1)
	next.LoadedAt = time.Now()
	r.current.Store(next)

	r.logger.Info().Uint64("version", next.Version).Int("datasets", loaded).Msg("Dataset snapshot published")
	return next, errors.Join(errs...)
}

func (r *Registry) load(ctx context.Context, src Source) (*records.Store, error) {
	if src.Loader == nil {
		return nil, nil
	}

	start := time.Now()
	table, err := src.Loader.Load(ctx)
	if err != nil {
		metrics.RecordDatasetLoad(src.Name, src.Format, "error", time.Since(start), 0, 0, 0)
		r.logger.Error().Err(err).Str("dataset", src.Name).Msg("Failed to read dataset")
		return nil, fmt.Errorf("load %s: %w", src.Name, err)
	}

	store, err := records.Build(table, src.Schema)
	if err != nil {
		result := "error"
		var schemaErr *records.SchemaError
		if errors.As(err, &schemaErr) {
			result = "schema_error"
		}
		metrics.RecordDatasetLoad(src.Name, src.Format, result, time.Since(start), 0, 0, 0)
		r.logger.Error().Err(err).Str("dataset", src.Name).Msg("Dataset failed schema validation")
		return nil, fmt.Errorf("build %s: %w", src.Name, err)
	}

	stats := store.Stats()
	metrics.RecordDatasetLoad(src.Name, src.Format, "success", time.Since(start), stats.Kept, stats.MissingID, stats.BadTime)
	r.logger.Info().
		Str("dataset", src.Name).
		Int("rows", stats.Rows).
		Int("kept", stats.Kept).
		Int("missing_id", stats.MissingID).
		Int("bad_time", stats.BadTime).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")
	return store, nil
}
