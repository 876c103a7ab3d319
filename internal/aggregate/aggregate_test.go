// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package aggregate

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/tomtom215/kalainayam/internal/records"
)

func reviewStore(t *testing.T, rows [][]string) *records.Store {
	t.Helper()
	table := records.Table{
		Header: []string{"Clothing ID", "Rating", "Positive Feedback Count", "Department Name", "Class Name"},
		Rows:   rows,
	}
	store, err := records.Build(table, records.ReviewSchema())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return store
}

func TestGroupByMeanExcludesMissing(t *testing.T) {
	t.Parallel()

	store := reviewStore(t, [][]string{
		{"A", "4", "1", "Tops", "Knits"},
		{"B", "2", "", "Bottoms", "Pants"},
		{"A", "5", "", "Tops", "Knits"},
		{"A", "", "3", "Tops", "Blouses"},
		{"B", "3", "", "Bottoms", "Pants"},
	})

	groups := GroupBy(store, Grouping{
		Metrics:      []string{records.ColReviewRating, records.ColFeedback},
		Categoricals: []string{records.ColClass},
	})
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}

	a, b := groups[0], groups[1]
	if a.Key != "A" || a.Count != 3 {
		t.Errorf("A = %s/%d, want A/3", a.Key, a.Count)
	}
	if got := a.Stat(records.ColReviewRating).Mean; got != records.Some(4.5) {
		t.Errorf("A mean rating = %+v, want 4.5", got)
	}
	if got := a.Stat(records.ColFeedback).Sum; got != records.Some(4) {
		t.Errorf("A feedback sum = %+v, want 4", got)
	}
	if a.Mode(records.ColClass) != "Knits" {
		t.Errorf("A mode = %q, want Knits", a.Mode(records.ColClass))
	}

	if b.Key != "B" || b.Count != 2 {
		t.Errorf("B = %s/%d, want B/2", b.Key, b.Count)
	}
	if got := b.Stat(records.ColReviewRating).Mean; got != records.Some(2.5) {
		t.Errorf("B mean rating = %+v, want 2.5", got)
	}
	if st := b.Stat(records.ColFeedback); st.Mean.Valid || st.Sum.Valid || st.Present != 0 {
		t.Errorf("B feedback = %+v, want unavailable", st)
	}
}

func TestGroupByModeTiesAndUnknown(t *testing.T) {
	t.Parallel()

	store := reviewStore(t, [][]string{
		{"1", "4", "", "Tops", "Blouses"},
		{"1", "4", "", "Tops", "Knits"},
		{"1", "4", "", "Tops", "Knits"},
		{"1", "4", "", "Tops", "Blouses"},
		{"2", "4", "", "", ""},
	})

	groups := GroupBy(store, Grouping{Categoricals: []string{records.ColClass, records.ColDepartment}})
	if got := groups[0].Mode(records.ColClass); got != "Blouses" {
		t.Errorf("tied mode = %q, want first-encountered Blouses", got)
	}
	if got := groups[1].Mode(records.ColClass); got != "" {
		t.Errorf("all-missing mode = %q, want empty", got)
	}
	if got := groups[1].Mode(records.ColDepartment); got != "" {
		t.Errorf("all-missing department = %q, want empty", got)
	}
}

func TestGroupByCategoryKeepsUnknownGroup(t *testing.T) {
	t.Parallel()

	store := reviewStore(t, [][]string{
		{"1", "5", "", "Tops", "Knits"},
		{"2", "3", "", "", ""},
		{"3", "4", "", "Tops", "Knits"},
	})

	groups := GroupBy(store, Grouping{Key: records.ColClass, Metrics: []string{records.ColReviewRating}})
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].Key != "Knits" || groups[0].Count != 2 {
		t.Errorf("groups[0] = %s/%d, want Knits/2", groups[0].Key, groups[0].Count)
	}
	if groups[1].Key != "" || groups[1].Count != 1 {
		t.Errorf("groups[1] = %q/%d, want unknown/1", groups[1].Key, groups[1].Count)
	}
}

func TestGroupByCountMatchesRecords(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 20; run++ {
		n := rng.Intn(400)
		rows := make([][]string, n)
		want := make(map[string]int)
		for i := range rows {
			id := ""
			if rng.Intn(10) > 0 {
				id = strconv.Itoa(rng.Intn(25))
				want[id]++
			}
			rating := ""
			if rng.Intn(3) > 0 {
				rating = strconv.Itoa(1 + rng.Intn(5))
			}
			rows[i] = []string{id, rating, "", "Tops", "Knits"}
		}

		groups := GroupBy(reviewStore(t, rows), Grouping{Metrics: []string{records.ColReviewRating}})
		if len(groups) != len(want) {
			t.Fatalf("run %d: %d groups, want %d", run, len(groups), len(want))
		}
		for _, g := range groups {
			if g.Count < 1 || g.Count != want[g.Key] {
				t.Errorf("run %d: group %s count = %d, want %d", run, g.Key, g.Count, want[g.Key])
			}
			if st := g.Stat(records.ColReviewRating); st.Present > g.Count {
				t.Errorf("run %d: group %s present %d > count %d", run, g.Key, st.Present, g.Count)
			}
		}
	}
}

func TestGroupByUnknownMetricIsUnavailable(t *testing.T) {
	t.Parallel()

	store := reviewStore(t, [][]string{{"1", "5", "", "Tops", "Knits"}})
	groups := GroupBy(store, Grouping{Metrics: []string{"Nope"}, Categoricals: []string{"Nada"}})
	if st := groups[0].Stat("Nope"); st.Mean.Valid {
		t.Errorf("unknown metric = %+v, want unavailable", st)
	}
	if m := groups[0].Mode("Nada"); m != "" {
		t.Errorf("unknown categorical mode = %q, want empty", m)
	}
}

func salesStore(t *testing.T, rows [][]string) *records.Store {
	t.Helper()
	table := records.Table{
		Header: []string{"Customer Reference ID", "Item Purchased", "Purchase Amount (USD)", "Date Purchase", "Review Rating", "Payment Method"},
		Rows:   rows,
	}
	store, err := records.Build(table, records.SalesSchema())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return store
}

func TestTemporalBucketWindow(t *testing.T) {
	t.Parallel()

	store := salesStore(t, [][]string{
		{"1", "Hat", "100", "01-01-2023", "4", "Cash"},
		{"2", "Hat", "50", "02-01-2023", "4", "Cash"},
		{"3", "Hat", "", "02-01-2023", "4", "Cash"},
		{"4", "Hat", "30", "05-01-2023", "4", "Cash"},
		{"5", "Hat", "20", "09-01-2023", "4", "Cash"},
		{"6", "Hat", "10", "02-12-2022", "4", "Cash"},
	})

	buckets := TemporalBucket(store, records.ColAmount, 8)
	want := []struct {
		date  string
		total float64
		count int
		mean  records.Float
	}{
		{"2023-01-01", 100, 1, records.Some(100)},
		{"2023-01-02", 50, 2, records.Some(50)},
		{"2023-01-05", 30, 1, records.Some(30)},
		{"2023-01-09", 20, 1, records.Some(20)},
	}
	if len(buckets) != len(want) {
		t.Fatalf("len(buckets) = %d, want %d: %+v", len(buckets), len(want), buckets)
	}
	for i, w := range want {
		b := buckets[i]
		if b.Date != w.date || b.Total != w.total || b.Count != w.count || b.Mean != w.mean {
			t.Errorf("bucket %d = %+v, want %+v", i, b, w)
		}
	}
}

func TestTemporalBucketEmptyStore(t *testing.T) {
	t.Parallel()

	store := salesStore(t, nil)
	if got := TemporalBucket(store, records.ColAmount, 28); len(got) != 0 {
		t.Errorf("TemporalBucket on empty store = %v, want none", got)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	s := Describe([]float64{4, 1, 3, 2})
	if s.Count != 4 || s.Mean != records.Some(2.5) || s.Median != records.Some(2.5) ||
		s.Min != records.Some(1) || s.Max != records.Some(4) {
		t.Errorf("Describe = %+v", s)
	}
	if math.Abs(s.Std.Value-1.2909944487) > 1e-9 {
		t.Errorf("Std = %v, want ~1.291", s.Std.Value)
	}

	one := Describe([]float64{7})
	if one.Std.Valid {
		t.Error("std of one value should be unavailable")
	}
	if empty := Describe(nil); empty.Mean.Valid || empty.Median.Valid {
		t.Errorf("Describe(nil) = %+v, want unavailable", empty)
	}
}

func TestQuantileLinear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		values []float64
		q      float64
		want   float64
	}{
		{[]float64{1, 2, 3, 4}, 0.75, 3.25},
		{[]float64{10}, 0.75, 10},
		{[]float64{5, 1, 3}, 0.5, 3},
		{[]float64{2, 2, 2}, 0.75, 2},
	}
	for _, tt := range tests {
		got := Quantile(tt.values, tt.q)
		if !got.Valid || math.Abs(got.Value-tt.want) > 1e-12 {
			t.Errorf("Quantile(%v, %v) = %+v, want %v", tt.values, tt.q, got, tt.want)
		}
	}
	if Quantile(nil, 0.5).Valid {
		t.Error("Quantile(nil) should be unavailable")
	}
}

func TestValueCounts(t *testing.T) {
	t.Parallel()

	store := salesStore(t, [][]string{
		{"1", "Hat", "1", "01-01-2023", "4", "Cash"},
		{"2", "Hat", "1", "01-01-2023", "4", "Credit Card"},
		{"3", "Hat", "1", "01-01-2023", "4", "Credit Card"},
		{"4", "Hat", "1", "01-01-2023", "4", ""},
	})
	got := ValueCounts(store, records.ColPayment)
	want := []Count{{"Credit Card", 2}, {"Cash", 1}, {"", 1}}
	if len(got) != len(want) {
		t.Fatalf("ValueCounts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ValueCounts[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if d := Distinct(store, records.ColPayment); d != 2 {
		t.Errorf("Distinct = %d, want 2", d)
	}
}
