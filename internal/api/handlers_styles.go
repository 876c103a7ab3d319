// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/kalainayam/internal/cache"
	"github.com/tomtom215/kalainayam/internal/insights"
	"github.com/tomtom215/kalainayam/internal/metrics"
)

// StyleInsights handles GET /api/v1/style-insights.
func (h *Handler) StyleInsights(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	snap := h.snapshots.Current()
	if snap == nil || snap.Reviews == nil {
		rw.ServiceUnavailable("Review dataset not loaded")
		return
	}

	key := cache.GenerateKey("style-insights", snap.Version)
	value, hit := h.cache.GetOrCompute(key, func() any {
		start := time.Now()
		report := insights.StyleInsights(snap.Reviews)
		metrics.RecordPipeline("style_insights", time.Since(start))
		return report
	})
	metrics.RecordInsightsCache(hit)

	rw.SuccessWithMeta(value.(*insights.StyleReport), &APIMeta{SnapshotVersion: snap.Version, Cached: hit})
}
