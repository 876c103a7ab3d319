// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status          string    `json:"status"`
	Uptime          string    `json:"uptime"`
	SnapshotVersion uint64    `json:"snapshot_version,omitempty"`
	LoadedAt        time.Time `json:"loaded_at,omitempty"`
	SalesRecords    int       `json:"sales_records"`
	ReviewRecords   int       `json:"review_records"`
}

// HealthLive handles GET /api/v1/health/live and GET /api/health.
// The process is live as long as it can answer.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.healthStatus("ok"))
}

// HealthReady handles GET /api/v1/health/ready. It answers 503 until the
// first dataset snapshot is published.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.snapshots.Current() == nil {
		rw.ServiceUnavailable("Datasets not loaded yet")
		return
	}
	rw.Success(h.healthStatus("ready"))
}

func (h *Handler) healthStatus(status string) HealthStatus {
	hs := HealthStatus{
		Status: status,
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	}
	if snap := h.snapshots.Current(); snap != nil {
		hs.SnapshotVersion = snap.Version
		hs.LoadedAt = snap.LoadedAt
		if snap.Sales != nil {
			hs.SalesRecords = snap.Sales.Len()
		}
		if snap.Reviews != nil {
			hs.ReviewRecords = snap.Reviews.Len()
		}
	}
	return hs
}
