// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package insights

import (
	"fmt"
	"sort"

	"github.com/tomtom215/kalainayam/internal/aggregate"
	"github.com/tomtom215/kalainayam/internal/records"
)

const (
	styleLimit       = 5
	minClassReviews  = 10
	unknownClassName = "Unknown"
)

// StyleReport describes product classes in the review store.
type StyleReport struct {
	Dataset  DatasetStats `json:"datasetStats"`
	Trending []ClassTrend `json:"trendingStyles"`
	TopRated []ClassRated `json:"topRatedStyles"`
}

// DatasetStats summarizes the review store.
type DatasetStats struct {
	TotalReviews       int           `json:"totalReviews"`
	UniqueProducts     int           `json:"uniqueProducts"`
	UniqueClasses      int           `json:"uniqueClasses"`
	AvgRating          records.Float `json:"avgRating"`
	RecommendationRate records.Float `json:"recommendationRate"`
	AgeMin             records.Float `json:"ageMin"`
	AgeMax             records.Float `json:"ageMax"`
	AgeRange           string        `json:"ageRange,omitempty"`
}

// ClassTrend is a class ranked by review volume.
type ClassTrend struct {
	Class     string        `json:"class"`
	Reviews   int           `json:"reviews"`
	AvgRating records.Float `json:"avgRating"`
}

// ClassRated is a class ranked by mean rating.
type ClassRated struct {
	Class              string        `json:"class"`
	Rating             float64       `json:"rating"`
	RatedReviews       int           `json:"ratedReviews"`
	RecommendationRate records.Float `json:"recommendationRate"`
}

// StyleInsights reports trending and top-rated classes. Classes need at
// least ten rated reviews to be top-rated.
func StyleInsights(store *records.Store) *StyleReport {
	if store == nil {
		return &StyleReport{}
	}

	classes := aggregate.GroupBy(store, aggregate.Grouping{
		Key:     records.ColClass,
		Metrics: []string{records.ColReviewRating, records.ColRecommended},
	})

	return &StyleReport{
		Dataset:  datasetStats(store),
		Trending: trendingClasses(classes),
		TopRated: topRatedClasses(classes),
	}
}

func className(key string) string {
	if key == "" {
		return unknownClassName
	}
	return key
}

func trendingClasses(classes []aggregate.Group) []ClassTrend {
	sorted := make([]aggregate.Group, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	if len(sorted) > styleLimit {
		sorted = sorted[:styleLimit]
	}

	out := make([]ClassTrend, len(sorted))
	for i := range sorted {
		out[i] = ClassTrend{
			Class:     className(sorted[i].Key),
			Reviews:   sorted[i].Count,
			AvgRating: sorted[i].Stat(records.ColReviewRating).Mean.Round(2),
		}
	}
	return out
}

func topRatedClasses(classes []aggregate.Group) []ClassRated {
	var out []ClassRated
	for i := range classes {
		g := &classes[i]
		st := g.Stat(records.ColReviewRating)
		if st.Present < minClassReviews || !st.Mean.Valid {
			continue
		}
		rated := ClassRated{
			Class:        className(g.Key),
			Rating:       records.Round(st.Mean.Value, 2),
			RatedReviews: st.Present,
		}
		if rec := g.Stat(records.ColRecommended).Sum; rec.Valid {
			rated.RecommendationRate = records.Some(rec.Value / float64(g.Count) * 100).Round(2)
		}
		out = append(out, rated)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > styleLimit {
		out = out[:styleLimit]
	}
	return out
}

func datasetStats(store *records.Store) DatasetStats {
	ds := DatasetStats{
		TotalReviews:   store.Len(),
		UniqueProducts: len(aggregate.GroupBy(store, aggregate.Grouping{})),
		UniqueClasses:  aggregate.Distinct(store, records.ColClass),
		AvgRating:      aggregate.Describe(store.MetricValues(records.ColReviewRating)).Mean.Round(2),
	}

	if rec := store.MetricValues(records.ColRecommended); len(rec) > 0 && store.Len() > 0 {
		var sum float64
		for _, v := range rec {
			sum += v
		}
		ds.RecommendationRate = records.Some(sum / float64(store.Len()) * 100).Round(1)
	}

	ages := aggregate.Describe(store.MetricValues(records.ColAge))
	ds.AgeMin, ds.AgeMax = ages.Min, ages.Max
	if ages.Min.Valid {
		ds.AgeRange = fmt.Sprintf("%d - %d", int(ages.Min.Value), int(ages.Max.Value))
	}
	return ds
}
