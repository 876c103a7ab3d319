// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package recommend

import (
	"github.com/tomtom215/kalainayam/internal/records"
)

// Market demand labels.
const (
	DemandHigh     = "High"
	DemandModerate = "Moderate"
)

// Price tiers that change material selection. Any other tier leaves the
// class materials unchanged.
const (
	PricePremium = "premium"
	PriceMid     = "mid"
	PriceBudget  = "budget"
)

// FallbackConfidence is the fixed confidence of a padded suggestion.
const FallbackConfidence = 0.5

// Candidate is a scored product group.
type Candidate struct {
	// Key is the product identifier.
	Key string

	Count       int
	MeanRating  records.Float
	FeedbackSum records.Float
	Class       string
	Department  string

	Score      float64
	Confidence float64
}

// Params are the caller's filters. Empty or unknown values resolve to the
// catalog defaults.
type Params struct {
	Season   string `json:"season"`
	Audience string `json:"audience"`
	Price    string `json:"price"`
	Focus    string `json:"focus"`
}

// Suggestion is one composed collection idea.
type Suggestion struct {
	Design           string   `json:"design"`
	DesignNumber     string   `json:"designNumber"`
	Palette          []string `json:"palette"`
	ColorNames       []string `json:"colorNames"`
	Materials        []string `json:"materials"`
	Rationale        string   `json:"rationale"`
	MarketDemand     string   `json:"marketDemand"`
	Confidence       float64  `json:"confidence"`
	SourceIdentifier *string  `json:"sourceIdentifier"`
}

// IsFallback reports whether the suggestion was padded.
func (s *Suggestion) IsFallback() bool {
	return s.SourceIdentifier == nil
}

// Response wraps a suggestion list with request metadata.
type Response struct {
	Suggestions []Suggestion `json:"suggestions"`
	Metadata    Metadata     `json:"metadata"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	Season     string `json:"season"`
	Audience   string `json:"audience"`
	Price      string `json:"price"`
	Focus      string `json:"focus"`
	TopK       int    `json:"top_k"`
	Candidates int    `json:"candidates"`
	Pool       int    `json:"pool"`
	Unfiltered bool   `json:"unfiltered"`
	Fallbacks  int    `json:"fallbacks"`
	LatencyMS  int64  `json:"latency_ms"`
}
