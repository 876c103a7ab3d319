// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package aggregate

import (
	"math"
	"sort"

	"github.com/tomtom215/kalainayam/internal/records"
)

// Summary describes a numeric sample. Std is the sample standard deviation
// (n-1) and needs at least two values.
type Summary struct {
	Count  int           `json:"count"`
	Mean   records.Float `json:"mean"`
	Median records.Float `json:"median"`
	Min    records.Float `json:"min"`
	Max    records.Float `json:"max"`
	Std    records.Float `json:"std"`
}

// Describe summarizes values. It does not modify the input.
func Describe(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	s.Mean = records.Some(mean)
	s.Median = records.Some(quantileSorted(sorted, 0.5))
	s.Min = records.Some(sorted[0])
	s.Max = records.Some(sorted[len(sorted)-1])

	if len(sorted) > 1 {
		var ss float64
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		s.Std = records.Some(math.Sqrt(ss / float64(len(sorted)-1)))
	}
	return s
}

// Quantile returns the q-th quantile with linear interpolation between the
// closest ranks, position (n-1)*q. Unavailable for an empty sample.
func Quantile(values []float64, q float64) records.Float {
	if len(values) == 0 {
		return records.Float{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return records.Some(quantileSorted(sorted, q))
}

func quantileSorted(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Count is one distinct categorical value and its frequency.
type Count struct {
	Value string
	Count int
}

// ValueCounts counts a categorical column, most frequent first, ties in
// first-encountered order. Unknown ("") values form their own entry.
func ValueCounts(store *records.Store, attr string) []Count {
	groups := GroupBy(store, Grouping{Key: attr})
	counts := make([]Count, len(groups))
	for i, g := range groups {
		counts[i] = Count{Value: g.Key, Count: g.Count}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// Distinct returns the number of distinct non-empty values of a categorical.
func Distinct(store *records.Store, attr string) int {
	a, ok := store.AttrIndex(attr)
	if !ok {
		return 0
	}
	seen := make(map[string]struct{})
	for i := 0; i < store.Len(); i++ {
		if v := store.Attr(i, a); v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
