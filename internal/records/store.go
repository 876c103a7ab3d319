// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package records

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

type record struct {
	id      string
	metrics []Float
	attrs   []string
	at      time.Time
}

// BuildStats counts what happened to the input rows.
type BuildStats struct {
	Rows      int `json:"rows"`
	Kept      int `json:"kept"`
	MissingID int `json:"missing_id"`
	BadTime   int `json:"bad_time"`
}

// Dropped is the number of input rows not in the store.
func (s BuildStats) Dropped() int {
	return s.MissingID + s.BadTime
}

// Store is an immutable, ordered collection of records sharing a schema.
// All accessors are safe for concurrent use.
type Store struct {
	schema  Schema
	records []record
	metrics map[string]int
	attrs   map[string]int
	stats   BuildStats
	minTime time.Time
	maxTime time.Time
}

// Build validates the header against schema and normalizes every row.
func Build(table Table, schema Schema) (*Store, error) {
	if strings.TrimSpace(schema.ID.Name) == "" {
		return nil, errors.New("schema has no identifier column")
	}

	header := make(map[string]int, len(table.Header))
	for i, h := range table.Header {
		name := normalizeHeader(h)
		if _, dup := header[name]; !dup {
			header[name] = i
		}
	}

	var missing []string
	resolve := func(c Column) int {
		for _, name := range append([]string{c.Name}, c.Aliases...) {
			if idx, ok := header[name]; ok {
				return idx
			}
		}
		if !c.Optional {
			missing = append(missing, c.Name)
		}
		return -1
	}

	idIdx := resolve(schema.ID)
	metricIdx := make([]int, len(schema.Metrics))
	for i, c := range schema.Metrics {
		metricIdx[i] = resolve(c)
	}
	attrIdx := make([]int, len(schema.Categoricals))
	for i, c := range schema.Categoricals {
		attrIdx[i] = resolve(c)
	}
	timeIdx := -1
	if schema.Time != nil {
		timeIdx = resolve(schema.Time.Column)
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Schema: schema.Name, Missing: missing}
	}

	s := &Store{
		schema:  schema,
		records: make([]record, 0, len(table.Rows)),
		metrics: make(map[string]int, len(schema.Metrics)),
		attrs:   make(map[string]int, len(schema.Categoricals)),
	}
	for i, c := range schema.Metrics {
		s.metrics[c.Name] = i
	}
	for i, c := range schema.Categoricals {
		s.attrs[c.Name] = i
	}

	for _, row := range table.Rows {
		s.stats.Rows++

		id := cell(row, idIdx)
		if schema.NumericID {
			id = normalizeNumericID(id)
		}
		if id == "" {
			s.stats.MissingID++
			continue
		}

		rec := record{
			id:      id,
			metrics: make([]Float, len(metricIdx)),
			attrs:   make([]string, len(attrIdx)),
		}
		for i, idx := range metricIdx {
			rec.metrics[i] = ParseFloat(cell(row, idx))
		}
		for i, idx := range attrIdx {
			rec.attrs[i] = cell(row, idx)
		}

		if timeIdx >= 0 {
			at, err := time.Parse(schema.Time.Layout, cell(row, timeIdx))
			switch {
			case err == nil:
				rec.at = at
			case schema.Temporal:
				s.stats.BadTime++
				continue
			}
		}

		s.records = append(s.records, rec)
		if !rec.at.IsZero() {
			if s.maxTime.IsZero() || rec.at.After(s.maxTime) {
				s.maxTime = rec.at
			}
			if s.minTime.IsZero() || rec.at.Before(s.minTime) {
				s.minTime = rec.at
			}
		}
	}
	s.stats.Kept = len(s.records)

	return s, nil
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeNumericID(id string) string {
	if id == "" {
		return ""
	}
	v, err := strconv.ParseFloat(id, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return id
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return id
}

// Schema returns the schema the store was built with.
func (s *Store) Schema() Schema { return s.schema }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Stats reports how the input rows were handled.
func (s *Store) Stats() BuildStats { return s.stats }

// ID returns the identifier of record i.
func (s *Store) ID(i int) string { return s.records[i].id }

// Metric returns metric m of record i. m comes from MetricIndex.
func (s *Store) Metric(i, m int) Float { return s.records[i].metrics[m] }

// Attr returns categorical a of record i. a comes from AttrIndex.
func (s *Store) Attr(i, a int) string { return s.records[i].attrs[a] }

// Time returns the timestamp of record i and whether it has one.
func (s *Store) Time(i int) (time.Time, bool) {
	at := s.records[i].at
	return at, !at.IsZero()
}

// MetricIndex resolves a metric column name.
func (s *Store) MetricIndex(name string) (int, bool) {
	m, ok := s.metrics[name]
	return m, ok
}

// AttrIndex resolves a categorical column name.
func (s *Store) AttrIndex(name string) (int, bool) {
	a, ok := s.attrs[name]
	return a, ok
}

// TimeRange returns the earliest and latest timestamps. ok is false when no
// record carries a timestamp.
func (s *Store) TimeRange() (earliest, latest time.Time, ok bool) {
	return s.minTime, s.maxTime, !s.maxTime.IsZero()
}

// MetricValues returns every present value of a metric in record order.
func (s *Store) MetricValues(name string) []float64 {
	m, ok := s.metrics[name]
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(s.records))
	for i := range s.records {
		if f := s.records[i].metrics[m]; f.Valid {
			out = append(out, f.Value)
		}
	}
	return out
}
