// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package recommend

import (
	"fmt"

	"github.com/tomtom215/kalainayam/internal/records"
)

// Config contains all configuration for the suggestion engine.
type Config struct {
	// Weights are the scoring and confidence constants.
	Weights Weights `json:"weights" koanf:"weights"`

	// Fields names the review columns the ranker reads.
	Fields Fields `json:"fields" koanf:"fields"`

	// Limits bounds topK.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// Weights are the constants of the score and confidence formulas. The
// defaults are part of the observable output and should only change
// deliberately.
type Weights struct {
	RatingScaleMax float64 `json:"rating_scale_max" koanf:"rating_scale_max"`
	FeedbackWeight float64 `json:"feedback_weight" koanf:"feedback_weight"`

	BaseConfidence float64 `json:"base_confidence" koanf:"base_confidence"`
	RatingWeight   float64 `json:"rating_weight" koanf:"rating_weight"`
	ConfidenceCap  float64 `json:"confidence_cap" koanf:"confidence_cap"`
	CountCap       float64 `json:"count_cap" koanf:"count_cap"`
	CountScale     float64 `json:"count_scale" koanf:"count_scale"`

	// DemandQuantile is the score quantile at or above which demand is High.
	DemandQuantile float64 `json:"demand_quantile" koanf:"demand_quantile"`
}

// Fields names the metric and categorical columns used for ranking.
type Fields struct {
	Rating     string `json:"rating" koanf:"rating"`
	Feedback   string `json:"feedback" koanf:"feedback"`
	Class      string `json:"class" koanf:"class"`
	Department string `json:"department" koanf:"department"`
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	// DefaultK is used when a request does not set topK.
	DefaultK int `json:"default_k" koanf:"default_k"`

	// MaxK is the largest accepted topK.
	MaxK int `json:"max_k" koanf:"max_k"`
}

// DefaultWeights returns the reference scoring constants.
func DefaultWeights() Weights {
	return Weights{
		RatingScaleMax: 5,
		FeedbackWeight: 0.05,
		BaseConfidence: 0.6,
		RatingWeight:   0.4,
		ConfidenceCap:  0.95,
		CountCap:       0.2,
		CountScale:     1000,
		DemandQuantile: 0.75,
	}
}

// DefaultFields returns the review dataset columns.
func DefaultFields() Fields {
	return Fields{
		Rating:     records.ColReviewRating,
		Feedback:   records.ColFeedback,
		Class:      records.ColClass,
		Department: records.ColDepartment,
	}
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: DefaultWeights(),
		Fields:  DefaultFields(),
		Limits: LimitsConfig{
			DefaultK: 3,
			MaxK:     12,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	w := c.Weights
	if w.RatingScaleMax <= 0 {
		return fmt.Errorf("weights.rating_scale_max must be positive, got %f", w.RatingScaleMax)
	}
	if w.FeedbackWeight < 0 {
		return fmt.Errorf("weights.feedback_weight must be non-negative, got %f", w.FeedbackWeight)
	}
	if w.ConfidenceCap <= 0 || w.ConfidenceCap > 1 {
		return fmt.Errorf("weights.confidence_cap must be in (0, 1], got %f", w.ConfidenceCap)
	}
	if w.BaseConfidence < 0 || w.BaseConfidence > w.ConfidenceCap {
		return fmt.Errorf("weights.base_confidence must be in [0, confidence_cap], got %f", w.BaseConfidence)
	}
	if w.RatingWeight < 0 || w.CountCap < 0 {
		return fmt.Errorf("weights.rating_weight and weights.count_cap must be non-negative")
	}
	if w.CountScale <= 0 {
		return fmt.Errorf("weights.count_scale must be positive, got %f", w.CountScale)
	}
	if w.DemandQuantile < 0 || w.DemandQuantile > 1 {
		return fmt.Errorf("weights.demand_quantile must be in [0, 1], got %f", w.DemandQuantile)
	}

	if c.Fields.Rating == "" || c.Fields.Class == "" {
		return fmt.Errorf("fields.rating and fields.class are required")
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}
	return nil
}
