// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"errors"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/kalainayam/internal/logging"
	"github.com/tomtom215/kalainayam/internal/records"
)

// ReloadResult is the /datasets/reload payload.
type ReloadResult struct {
	SnapshotVersion uint64    `json:"snapshot_version"`
	LoadedAt        time.Time `json:"loaded_at"`
	SalesRecords    int       `json:"sales_records"`
	ReviewRecords   int       `json:"review_records"`
	Warnings        []string  `json:"warnings,omitempty"`
}

// ReloadDatasets handles POST /api/v1/datasets/reload. A partial failure
// still publishes the datasets that loaded and reports the rest as warnings.
func (h *Handler) ReloadDatasets(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	logger := logging.Ctx(r.Context())

	before := h.snapshots.Current()
	snap, err := h.snapshots.Reload(r.Context())
	if err != nil && (snap == nil || snap == before) {
		var schemaErr *records.SchemaError
		switch {
		case errors.As(err, &schemaErr):
			rw.ErrorWithDetails(http.StatusUnprocessableEntity, ErrCodeSchema, err.Error(),
				map[string]any{"schema": schemaErr.Schema, "missing": schemaErr.Missing})
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			rw.ServiceUnavailable("Dataset source temporarily disabled after repeated failures")
		default:
			rw.InternalError("Dataset reload failed", err)
		}
		return
	}

	result := ReloadResult{SnapshotVersion: snap.Version, LoadedAt: snap.LoadedAt}
	if snap.Sales != nil {
		result.SalesRecords = snap.Sales.Len()
	}
	if snap.Reviews != nil {
		result.ReviewRecords = snap.Reviews.Len()
	}
	if err != nil {
		result.Warnings = []string{err.Error()}
		logger.Warn().Err(err).Msg("Dataset reload partially failed")
	}
	logger.Info().Uint64("version", snap.Version).Msg("Datasets reloaded on request")

	rw.Success(result)
}
