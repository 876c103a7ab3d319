// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/kalainayam/internal/cache"
	"github.com/tomtom215/kalainayam/internal/dataset"
	"github.com/tomtom215/kalainayam/internal/insights"
	"github.com/tomtom215/kalainayam/internal/logging"
	"github.com/tomtom215/kalainayam/internal/metrics"
	"github.com/tomtom215/kalainayam/internal/validation"
)

// TrendsSummary is the /trends payload: the parts of the insight bundle a
// dashboard needs on first paint.
type TrendsSummary struct {
	Region         string                  `json:"region"`
	WindowDays     int                     `json:"windowDays"`
	Overview       insights.Overview       `json:"overview"`
	TopItems       []insights.ItemShare    `json:"topItems"`
	TemporalTrends insights.Trend          `json:"temporalTrends"`
	Fashion        insights.Fashion        `json:"fashion"`
	PaymentMix     []insights.PaymentShare `json:"paymentMix"`
}

// Trends handles GET /api/v1/trends?days=28&region=global.
// region is echoed; the sales data carries no region column.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, ok := parseTrendsRequest(r, h.insights.WindowDays)
	if !ok {
		rw.ValidationError("days must be an integer", map[string]any{"field": "days"})
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	snap := h.snapshots.Current()
	if snap == nil || snap.Sales == nil {
		rw.ServiceUnavailable("Sales dataset not loaded")
		return
	}

	report, cached := h.salesInsights(r, snap, req.Days)
	rw.SuccessWithMeta(TrendsSummary{
		Region:         req.Region,
		WindowDays:     req.Days,
		Overview:       report.Overview,
		TopItems:       report.TopItems,
		TemporalTrends: report.TemporalTrends,
		Fashion:        report.Fashion,
		PaymentMix:     report.PaymentMix,
	}, &APIMeta{SnapshotVersion: snap.Version, Cached: cached})
}

// TrendsDetailed handles GET /api/v1/trends/detailed: the full bundle over
// the configured window.
func (h *Handler) TrendsDetailed(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	snap := h.snapshots.Current()
	if snap == nil || snap.Sales == nil {
		rw.ServiceUnavailable("Sales dataset not loaded")
		return
	}

	report, cached := h.salesInsights(r, snap, h.insights.WindowDays)
	rw.SuccessWithMeta(report, &APIMeta{SnapshotVersion: snap.Version, Cached: cached})
}

func (h *Handler) salesInsights(r *http.Request, snap *dataset.Snapshot, days int) (*insights.Insights, bool) {
	key := cache.GenerateKey("insights", struct {
		Version uint64
		Days    int
	}{snap.Version, days})

	value, hit := h.cache.GetOrCompute(key, func() any {
		start := time.Now()
		opts := h.insights
		opts.WindowDays = days
		report := insights.Compute(snap.Sales, h.catalog, opts)
		metrics.RecordPipeline("insights", time.Since(start))
		logging.Ctx(r.Context()).Debug().
			Uint64("snapshot", snap.Version).
			Int("days", days).
			Dur("duration", time.Since(start)).
			Msg("Computed sales insights")
		return report
	})
	metrics.RecordInsightsCache(hit)

	return value.(*insights.Insights), hit
}
