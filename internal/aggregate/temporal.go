// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package aggregate

import (
	"sort"
	"time"

	"github.com/tomtom215/kalainayam/internal/records"
)

// DateLayout is the calendar format used for bucket dates.
const DateLayout = "2006-01-02"

// Bucket aggregates one calendar day.
type Bucket struct {
	Date  string        `json:"date"`
	Day   time.Time     `json:"-"`
	Total float64       `json:"total"`
	Count int           `json:"transactions"`
	Mean  records.Float `json:"mean"`
}

// TemporalBucket buckets records by day over [maxDate-windowDays, maxDate],
// both ends inclusive, where maxDate is the latest timestamp in the store.
// Days without records are omitted. Total and Mean cover present values of
// metric; Count is every record of the day.
func TemporalBucket(store *records.Store, metric string, windowDays int) []Bucket {
	_, latest, ok := store.TimeRange()
	if !ok {
		return nil
	}
	if windowDays < 0 {
		windowDays = 0
	}
	end := day(latest)
	start := end.AddDate(0, 0, -windowDays)

	m, hasMetric := store.MetricIndex(metric)

	type acc struct {
		total   float64
		count   int
		present int
	}
	days := make(map[time.Time]*acc)

	for i := 0; i < store.Len(); i++ {
		at, ok := store.Time(i)
		if !ok {
			continue
		}
		d := day(at)
		if d.Before(start) || d.After(end) {
			continue
		}
		a := days[d]
		if a == nil {
			a = &acc{}
			days[d] = a
		}
		a.count++
		if hasMetric {
			if f := store.Metric(i, m); f.Valid {
				a.total += f.Value
				a.present++
			}
		}
	}

	buckets := make([]Bucket, 0, len(days))
	for d, a := range days {
		b := Bucket{Date: d.Format(DateLayout), Day: d, Total: a.total, Count: a.count}
		if a.present > 0 {
			b.Mean = records.Some(a.total / float64(a.present))
		}
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Day.Before(buckets[j].Day) })
	return buckets
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
