// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package aggregate

import (
	"github.com/tomtom215/kalainayam/internal/records"
)

// Grouping selects what GroupBy computes.
type Grouping struct {
	// Key is a categorical column name. Empty groups by record identifier.
	Key string

	Metrics      []string
	Categoricals []string
}

// Stat summarizes one metric within a group. Missing values are excluded
// from both Sum and Mean; both are unavailable when Present is zero.
type Stat struct {
	Sum     records.Float
	Mean    records.Float
	Present int
}

// Group holds the statistics of every record sharing a key.
type Group struct {
	Key   string
	Count int
	Stats map[string]Stat
	Modes map[string]string
}

// Stat returns the statistics for a metric; the zero Stat (unavailable) for
// metrics that were not requested.
func (g *Group) Stat(metric string) Stat {
	return g.Stats[metric]
}

// Mode returns the most frequent value of a categorical, "" when unknown.
func (g *Group) Mode(attr string) string {
	return g.Modes[attr]
}

// tally counts categorical values and remembers first-seen order so ties
// resolve to the earliest value.
type tally struct {
	counts map[string]int
	order  []string
}

func (t *tally) add(v string) {
	if v == "" {
		return
	}
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

func (t *tally) mode() string {
	best, bestCount := "", 0
	for _, v := range t.order {
		if c := t.counts[v]; c > bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

type accumulator struct {
	key     string
	count   int
	sums    []float64
	present []int
	tallies []tally
}

// GroupBy groups the store by the Key attribute. Metric or categorical names the
// schema does not know are reported as unavailable and unknown respectively.
func GroupBy(store *records.Store, by Grouping) []Group {
	keyIdx := -1
	if by.Key != "" {
		if a, ok := store.AttrIndex(by.Key); ok {
			keyIdx = a
		}
	}

	metricIdx := make([]int, len(by.Metrics))
	for i, name := range by.Metrics {
		metricIdx[i] = -1
		if m, ok := store.MetricIndex(name); ok {
			metricIdx[i] = m
		}
	}
	attrIdx := make([]int, len(by.Categoricals))
	for i, name := range by.Categoricals {
		attrIdx[i] = -1
		if a, ok := store.AttrIndex(name); ok {
			attrIdx[i] = a
		}
	}

	index := make(map[string]int)
	var accs []*accumulator

	for i := 0; i < store.Len(); i++ {
		var key string
		switch {
		case by.Key == "":
			key = store.ID(i)
		case keyIdx >= 0:
			key = store.Attr(i, keyIdx)
		}

		pos, ok := index[key]
		if !ok {
			pos = len(accs)
			index[key] = pos
			accs = append(accs, &accumulator{
				key:     key,
				sums:    make([]float64, len(metricIdx)),
				present: make([]int, len(metricIdx)),
				tallies: make([]tally, len(attrIdx)),
			})
		}
		acc := accs[pos]
		acc.count++

		for j, m := range metricIdx {
			if m < 0 {
				continue
			}
			if f := store.Metric(i, m); f.Valid {
				acc.sums[j] += f.Value
				acc.present[j]++
			}
		}
		for j, a := range attrIdx {
			if a >= 0 {
				acc.tallies[j].add(store.Attr(i, a))
			}
		}
	}

	groups := make([]Group, len(accs))
	for i, acc := range accs {
		g := Group{
			Key:   acc.key,
			Count: acc.count,
			Stats: make(map[string]Stat, len(by.Metrics)),
			Modes: make(map[string]string, len(by.Categoricals)),
		}
		for j, name := range by.Metrics {
			st := Stat{Present: acc.present[j]}
			if st.Present > 0 {
				st.Sum = records.Some(acc.sums[j])
				st.Mean = records.Some(acc.sums[j] / float64(st.Present))
			}
			g.Stats[name] = st
		}
		for j, name := range by.Categoricals {
			g.Modes[name] = acc.tallies[j].mode()
		}
		groups[i] = g
	}
	return groups
}
