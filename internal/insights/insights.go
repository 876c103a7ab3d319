// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package insights

import (
	"sort"

	"github.com/tomtom215/kalainayam/internal/aggregate"
	"github.com/tomtom215/kalainayam/internal/catalog"
	"github.com/tomtom215/kalainayam/internal/records"
)

// Options tunes the report sizes.
type Options struct {
	WindowDays      int `koanf:"window_days"`
	TopItems        int `koanf:"top_items"`
	Recommendations int `koanf:"recommendations"`
	MinRated        int `koanf:"min_rated"`
}

// DefaultOptions returns a four-week window and the top ten items.
func DefaultOptions() Options {
	return Options{
		WindowDays:      28,
		TopItems:        10,
		Recommendations: 5,
		MinRated:        2,
	}
}

// Insights is the full report for a sales store.
type Insights struct {
	Overview            Overview       `json:"overview"`
	TopItems            []ItemShare    `json:"topItems"`
	PriceStats          PriceStats     `json:"priceStats"`
	RatingStats         RatingStats    `json:"ratingStats"`
	PaymentMix          []PaymentShare `json:"paymentMix"`
	TemporalTrends      Trend          `json:"temporalTrends"`
	ItemRecommendations []ItemRating   `json:"itemRecommendations"`
	StyleBreakdown      []StyleShare   `json:"styleBreakdown"`
	Fashion             Fashion        `json:"fashion"`
}

// Overview summarizes the whole store.
type Overview struct {
	TotalRecords    int           `json:"totalRecords"`
	UniqueItems     int           `json:"uniqueItems"`
	UniqueCustomers int           `json:"uniqueCustomers"`
	DateFrom        string        `json:"dateFrom,omitempty"`
	DateTo          string        `json:"dateTo,omitempty"`
	TotalRevenue    float64       `json:"totalRevenue"`
	AvgTransaction  records.Float `json:"avgTransaction"`
}

// ItemShare is an item's share of all records.
type ItemShare struct {
	Item       string  `json:"item"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PriceStats describes purchase amounts.
type PriceStats struct {
	Avg    records.Float `json:"avgPrice"`
	Median records.Float `json:"medianPrice"`
	Min    records.Float `json:"minPrice"`
	Max    records.Float `json:"maxPrice"`
	Std    records.Float `json:"stdDeviation"`
}

// RatingStats describes review ratings.
type RatingStats struct {
	Avg             records.Float      `json:"avgRating"`
	TotalReviews    int                `json:"totalReviews"`
	RatedPercentage float64            `json:"ratedPercentage"`
	Distribution    RatingDistribution `json:"distribution"`
}

// RatingDistribution buckets ratings: excellent >= 4, good [3,4),
// average [2,3), poor < 2.
type RatingDistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

// PaymentShare describes one payment method.
type PaymentShare struct {
	Method            string        `json:"method"`
	Count             int           `json:"count"`
	Percentage        float64       `json:"percentage"`
	Revenue           float64       `json:"revenue"`
	AvgPerTransaction records.Float `json:"avgPerTransaction"`
}

// Trend is the daily window ending at the latest record.
type Trend struct {
	WindowDays    int                `json:"windowDays"`
	Buckets       []aggregate.Bucket `json:"buckets"`
	GrowthPercent records.Float      `json:"growthPercent"`
}

// ItemRating is a well-rated item.
type ItemRating struct {
	Item        string  `json:"item"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}

// StyleShare describes one style family.
type StyleShare struct {
	Style      string        `json:"style"`
	Count      int           `json:"count"`
	Percentage float64       `json:"percentage"`
	AvgPrice   records.Float `json:"avgPrice"`
	AvgRating  records.Float `json:"avgRating"`
}

// Compute builds the full report. A nil or empty store yields an empty but
// well-formed report.
func Compute(store *records.Store, cat *catalog.Catalog, opts Options) *Insights {
	if store == nil {
		return &Insights{TemporalTrends: Trend{WindowDays: opts.WindowDays}}
	}
	items := aggregate.GroupBy(store, aggregate.Grouping{
		Metrics: []string{records.ColAmount, records.ColRating},
	})

	return &Insights{
		Overview:            overview(store, items),
		TopItems:            topItems(items, store.Len(), opts.TopItems),
		PriceStats:          priceStats(store),
		RatingStats:         ratingStats(store),
		PaymentMix:          paymentMix(store),
		TemporalTrends:      temporalTrend(store, opts.WindowDays),
		ItemRecommendations: itemRecommendations(items, opts.MinRated, opts.Recommendations),
		StyleBreakdown:      styleBreakdown(store, cat),
		Fashion:             fashionInsights(items, cat),
	}
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return records.Round(float64(part)/float64(whole)*100, 2)
}

func overview(store *records.Store, items []aggregate.Group) Overview {
	o := Overview{
		TotalRecords:    store.Len(),
		UniqueItems:     len(items),
		UniqueCustomers: aggregate.Distinct(store, records.ColCustomer),
	}
	if from, to, ok := store.TimeRange(); ok {
		o.DateFrom = from.Format(aggregate.DateLayout)
		o.DateTo = to.Format(aggregate.DateLayout)
	}
	amounts := store.MetricValues(records.ColAmount)
	var revenue float64
	for _, v := range amounts {
		revenue += v
	}
	o.TotalRevenue = records.Round(revenue, 2)
	if len(amounts) > 0 {
		o.AvgTransaction = records.Some(revenue / float64(len(amounts))).Round(2)
	}
	return o
}

// topItems orders by count; equal counts keep first-encountered order.
func topItems(items []aggregate.Group, total, limit int) []ItemShare {
	sorted := make([]aggregate.Group, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]ItemShare, len(sorted))
	for i, g := range sorted {
		out[i] = ItemShare{Item: g.Key, Count: g.Count, Percentage: percent(g.Count, total)}
	}
	return out
}

func priceStats(store *records.Store) PriceStats {
	s := aggregate.Describe(store.MetricValues(records.ColAmount))
	return PriceStats{
		Avg:    s.Mean.Round(2),
		Median: s.Median.Round(2),
		Min:    s.Min,
		Max:    s.Max,
		Std:    s.Std.Round(2),
	}
}

func ratingStats(store *records.Store) RatingStats {
	ratings := store.MetricValues(records.ColRating)
	rs := RatingStats{
		Avg:             aggregate.Describe(ratings).Mean.Round(2),
		TotalReviews:    len(ratings),
		RatedPercentage: percent(len(ratings), store.Len()),
	}
	for _, r := range ratings {
		switch {
		case r >= 4:
			rs.Distribution.Excellent++
		case r >= 3:
			rs.Distribution.Good++
		case r >= 2:
			rs.Distribution.Average++
		default:
			rs.Distribution.Poor++
		}
	}
	return rs
}

func paymentMix(store *records.Store) []PaymentShare {
	groups := aggregate.GroupBy(store, aggregate.Grouping{
		Key:     records.ColPayment,
		Metrics: []string{records.ColAmount},
	})
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })

	out := make([]PaymentShare, len(groups))
	for i := range groups {
		g := &groups[i]
		revenue := g.Stat(records.ColAmount).Sum.Or(0)
		out[i] = PaymentShare{
			Method:            g.Key,
			Count:             g.Count,
			Percentage:        percent(g.Count, store.Len()),
			Revenue:           records.Round(revenue, 2),
			AvgPerTransaction: records.Some(revenue / float64(g.Count)).Round(2),
		}
	}
	return out
}

func temporalTrend(store *records.Store, windowDays int) Trend {
	buckets := aggregate.TemporalBucket(store, records.ColAmount, windowDays)
	t := Trend{WindowDays: windowDays, Buckets: buckets}
	if len(buckets) >= 2 && buckets[0].Total != 0 {
		first, last := buckets[0].Total, buckets[len(buckets)-1].Total
		t.GrowthPercent = records.Some((last - first) / first * 100).Round(2)
	}
	return t
}

// itemRecommendations ranks items by mean rating among those with at least
// minRated rated records.
func itemRecommendations(items []aggregate.Group, minRated, limit int) []ItemRating {
	var out []ItemRating
	for i := range items {
		st := items[i].Stat(records.ColRating)
		if st.Present < minRated || !st.Mean.Valid {
			continue
		}
		out = append(out, ItemRating{
			Item:        items[i].Key,
			AvgRating:   records.Round(st.Mean.Value, 2),
			ReviewCount: st.Present,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgRating > out[j].AvgRating })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func styleBreakdown(store *records.Store, cat *catalog.Catalog) []StyleShare {
	amount, hasAmount := store.MetricIndex(records.ColAmount)
	rating, hasRating := store.MetricIndex(records.ColRating)

	type acc struct {
		count             int
		priceSum, rateSum float64
		priceN, rateN     int
	}
	var order []string
	byStyle := make(map[string]*acc)

	for i := 0; i < store.Len(); i++ {
		style := cat.StyleFamily(store.ID(i))
		a := byStyle[style]
		if a == nil {
			a = &acc{}
			byStyle[style] = a
			order = append(order, style)
		}
		a.count++
		if hasAmount {
			if f := store.Metric(i, amount); f.Valid {
				a.priceSum += f.Value
				a.priceN++
			}
		}
		if hasRating {
			if f := store.Metric(i, rating); f.Valid {
				a.rateSum += f.Value
				a.rateN++
			}
		}
	}

	out := make([]StyleShare, 0, len(order))
	for _, style := range order {
		a := byStyle[style]
		s := StyleShare{Style: style, Count: a.count, Percentage: percent(a.count, store.Len())}
		if a.priceN > 0 {
			s.AvgPrice = records.Some(a.priceSum / float64(a.priceN)).Round(2)
		}
		if a.rateN > 0 {
			s.AvgRating = records.Some(a.rateSum / float64(a.rateN)).Round(2)
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
