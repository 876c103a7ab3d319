// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

// Package recommend turns product review statistics into collection
// suggestions.
//
// # Architecture
//
// A suggestion request flows through three pure stages:
//
//   - aggregate.GroupBy groups review records by product identifier
//   - Rank scores each group and orders it by descending score
//   - Generate filters by design focus, composes palettes and materials,
//     diversifies by product class and pads with fallback designs
//
// Scoring is a fixed heuristic, not a trained model:
//
//	score      = count * (meanRating / 5) + feedbackSum * 0.05
//	confidence = min(0.95, 0.6 + (meanRating / 5) * 0.4 + min(0.2, count / 1000))
//
// A missing mean rating scores as zero. Equal scores keep their grouping
// order, so identical input always yields identical output.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog.Default(), logger)
//	resp := engine.Suggest(ctx, reviews, recommend.Params{
//	    Season: "autumn",
//	    Price:  "premium",
//	    Focus:  "tailoring",
//	}, 3)
//
// Generate always returns exactly topK suggestions. When real candidates run
// out the remainder are fallback designs with confidence 0.5.
//
// # Thread Safety
//
// The engine holds no per-request state and is safe for concurrent use.
package recommend
