// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"context"
	"time"

	"github.com/tomtom215/kalainayam/internal/cache"
	"github.com/tomtom215/kalainayam/internal/catalog"
	"github.com/tomtom215/kalainayam/internal/dataset"
	"github.com/tomtom215/kalainayam/internal/insights"
	"github.com/tomtom215/kalainayam/internal/recommend"
)

// Snapshots is the dataset registry as seen by the handlers.
type Snapshots interface {
	Current() *dataset.Snapshot
	Reload(ctx context.Context) (*dataset.Snapshot, error)
}

// Handler holds the dependencies of every endpoint.
type Handler struct {
	snapshots Snapshots
	engine    *recommend.Engine
	catalog   *catalog.Catalog
	cache     *cache.Cache[any]
	insights  insights.Options
	startTime time.Time
}

// NewHandler creates a handler. c may be nil, which disables caching.
func NewHandler(snapshots Snapshots, engine *recommend.Engine, c *cache.Cache[any], opts insights.Options) *Handler {
	if c == nil {
		c = cache.New[any](0)
	}
	return &Handler{
		snapshots: snapshots,
		engine:    engine,
		catalog:   engine.Catalog(),
		cache:     c,
		insights:  opts,
		startTime: time.Now(),
	}
}
