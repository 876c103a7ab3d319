// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/kalainayam/internal/recommend"
)

// TrendsRequest holds the /trends query parameters.
type TrendsRequest struct {
	Days   int    `query:"days" validate:"min=1,max=365"`
	Region string `query:"region" validate:"omitempty,max=64,catalogkey"`
}

// SuggestionRequest is the /suggestions body. Empty or unknown keys fall back
// to the catalog defaults; TopK 0 selects the configured default.
type SuggestionRequest struct {
	Season   string `json:"season" validate:"omitempty,max=64,catalogkey"`
	Audience string `json:"audience" validate:"omitempty,max=64,catalogkey"`
	Price    string `json:"price" validate:"omitempty,max=32,catalogkey"`
	Focus    string `json:"focus" validate:"omitempty,max=64,catalogkey"`
	TopK     int    `json:"top_k" validate:"min=0"`
}

// PaletteRequest holds the /palettes path parameters.
type PaletteRequest struct {
	Kind string `query:"kind" validate:"required,oneof=season style"`
	Key  string `query:"key" validate:"required,max=64,catalogkey"`
}

// parseTrendsRequest reads days and region, defaulting days to defDays.
// A non-numeric days is reported so the caller can answer 400.
func parseTrendsRequest(r *http.Request, defDays int) (TrendsRequest, bool) {
	q := r.URL.Query()
	req := TrendsRequest{Days: defDays, Region: "global"}

	if v := strings.TrimSpace(q.Get("days")); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return req, false
		}
		req.Days = days
	}
	if v := strings.TrimSpace(q.Get("region")); v != "" {
		req.Region = strings.ToLower(v)
	}
	return req, true
}

// params converts the request for the engine.
func (s *SuggestionRequest) params() recommend.Params {
	return recommend.Params{
		Season:   s.Season,
		Audience: s.Audience,
		Price:    s.Price,
		Focus:    s.Focus,
	}
}
