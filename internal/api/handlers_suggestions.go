// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/kalainayam/internal/logging"
	"github.com/tomtom215/kalainayam/internal/metrics"
	"github.com/tomtom215/kalainayam/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Suggestions handles POST /api/v1/suggestions. The response always holds
// exactly top_k suggestions; sparse or missing review data yields fallback
// designs rather than an error.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SuggestionRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	if maxK := h.engine.GetConfig().Limits.MaxK; req.TopK > maxK {
		rw.ValidationError(fmt.Sprintf("top_k must be at most %d", maxK), map[string]any{"field": "top_k", "tag": "max"})
		return
	}

	snap := h.snapshots.Current()
	if snap == nil {
		rw.ServiceUnavailable("Datasets not loaded yet")
		return
	}

	start := time.Now()
	resp := h.engine.Suggest(r.Context(), snap.Reviews, req.params(), req.TopK)
	metrics.RecordPipeline("suggestions", time.Since(start))
	metrics.RecordSuggestions(len(resp.Suggestions)-resp.Metadata.Fallbacks, resp.Metadata.Fallbacks)

	if snap.Reviews == nil {
		logging.Ctx(r.Context()).Warn().Msg("Review dataset not loaded, returning fallback suggestions")
	}

	rw.SuccessWithMeta(resp, &APIMeta{SnapshotVersion: snap.Version})
}

// decodeJSON reads a JSON body. An empty body decodes to the zero value.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
