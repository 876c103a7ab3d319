// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/kalainayam/internal/aggregate"
)

// Rank scores groups and orders them by descending score. The sort is
// stable: equal scores keep the order the groups were given in.
func Rank(groups []aggregate.Group, w Weights, f Fields) []Candidate {
	out := make([]Candidate, len(groups))
	for i := range groups {
		g := &groups[i]
		c := Candidate{
			Key:         g.Key,
			Count:       g.Count,
			MeanRating:  g.Stat(f.Rating).Mean,
			FeedbackSum: g.Stat(f.Feedback).Sum,
			Class:       g.Mode(f.Class),
			Department:  g.Mode(f.Department),
		}
		c.Score, c.Confidence = score(c, w)
		out[i] = c
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// score never reads NaN: unavailable metrics count as zero.
//
//nolint:gocritic // Candidate is small and copied on purpose
func score(c Candidate, w Weights) (score, confidence float64) {
	ratingNorm := c.MeanRating.Or(0) / w.RatingScaleMax
	count := float64(c.Count)

	score = count*ratingNorm + c.FeedbackSum.Or(0)*w.FeedbackWeight

	confidence = w.BaseConfidence + ratingNorm*w.RatingWeight + math.Min(w.CountCap, count/w.CountScale)
	confidence = math.Max(0, math.Min(w.ConfidenceCap, confidence))
	return score, confidence
}
