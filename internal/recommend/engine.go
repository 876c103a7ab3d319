// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kalainayam/internal/aggregate"
	"github.com/tomtom215/kalainayam/internal/catalog"
	"github.com/tomtom215/kalainayam/internal/logging"
	"github.com/tomtom215/kalainayam/internal/records"
)

// Engine runs the aggregate, rank and generate stages over a review store.
// It is safe for concurrent use.
type Engine struct {
	config    *Config
	catalog   *catalog.Catalog
	generator *Generator
	logger    zerolog.Logger

	requestCount  atomic.Int64
	fallbackCount atomic.Int64
	unfiltered    atomic.Int64
}

// Stats are cumulative engine counters.
type Stats struct {
	Requests   int64 `json:"requests"`
	Fallbacks  int64 `json:"fallbacks"`
	Unfiltered int64 `json:"unfiltered"`
}

// NewEngine creates a new suggestion engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	return &Engine{
		config:    cfg,
		catalog:   cat,
		generator: NewGenerator(cat, cfg.Weights.DemandQuantile),
		logger:    logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Candidates groups the store by product and ranks the groups. A nil store
// has no candidates.
func (e *Engine) Candidates(store *records.Store) []Candidate {
	if store == nil {
		return nil
	}
	f := e.config.Fields
	groups := aggregate.GroupBy(store, aggregate.Grouping{
		Metrics:      []string{f.Rating, f.Feedback},
		Categoricals: []string{f.Class, f.Department},
	})
	return Rank(groups, e.config.Weights, f)
}

// Suggest returns exactly topK suggestions, DefaultK when topK <= 0. It
// never fails: sparse data yields fallback designs.
func (e *Engine) Suggest(ctx context.Context, store *records.Store, p Params, topK int) *Response {
	start := time.Now()
	e.requestCount.Add(1)
	topK = e.ResolveK(topK)

	logger := e.logger.With().Str("request_id", logging.RequestIDFromContext(ctx)).Logger()

	ranked := e.Candidates(store)
	suggestions, gen := e.generator.generate(ranked, p, topK)

	if gen.fallbacks > 0 {
		e.fallbackCount.Add(int64(gen.fallbacks))
	}
	if gen.unfiltered {
		e.unfiltered.Add(1)
		logger.Debug().Str("focus", gen.params.focus).Msg("no candidates match focus, using unfiltered ranking")
	}

	resp := &Response{
		Suggestions: suggestions,
		Metadata: Metadata{
			Season:     gen.params.season,
			Audience:   gen.params.audience,
			Price:      gen.params.price,
			Focus:      gen.params.focus,
			TopK:       topK,
			Candidates: len(ranked),
			Pool:       gen.pool,
			Unfiltered: gen.unfiltered,
			Fallbacks:  gen.fallbacks,
			LatencyMS:  time.Since(start).Milliseconds(),
		},
	}

	logger.Debug().
		Int("candidates", len(ranked)).
		Int("pool", gen.pool).
		Int("fallbacks", gen.fallbacks).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("suggestions generated")

	return resp
}

// ResolveK returns k, or the configured default when k <= 0. MaxK is
// enforced by request validation, not here.
func (e *Engine) ResolveK(k int) int {
	if k <= 0 {
		return e.config.Limits.DefaultK
	}
	return k
}

// Catalog returns the lookup tables the engine composes with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// GetConfig returns the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config
}

// GetStats returns a snapshot of the cumulative counters.
func (e *Engine) GetStats() Stats {
	return Stats{
		Requests:   e.requestCount.Load(),
		Fallbacks:  e.fallbackCount.Load(),
		Unfiltered: e.unfiltered.Load(),
	}
}
