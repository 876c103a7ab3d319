// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDatasetLoad(t *testing.T) {
	before := testutil.ToFloat64(DatasetRowsDropped.WithLabelValues("metrics-test", "missing_id"))

	RecordDatasetLoad("metrics-test", "csv", "success", 20*time.Millisecond, 90, 7, 3)

	if got := testutil.ToFloat64(DatasetRecords.WithLabelValues("metrics-test")); got != 90 {
		t.Errorf("records gauge = %v, want 90", got)
	}
	if got := testutil.ToFloat64(DatasetRowsDropped.WithLabelValues("metrics-test", "missing_id")) - before; got != 7 {
		t.Errorf("missing_id delta = %v, want 7", got)
	}

	RecordDatasetLoad("metrics-test", "csv", "schema_error", time.Millisecond, 0, 0, 0)
	if got := testutil.ToFloat64(DatasetRecords.WithLabelValues("metrics-test")); got != 90 {
		t.Errorf("failed load changed records gauge to %v", got)
	}
	if got := testutil.ToFloat64(DatasetLoads.WithLabelValues("metrics-test", "schema_error")); got < 1 {
		t.Errorf("schema_error loads = %v, want >= 1", got)
	}
}

func TestRecordSuggestions(t *testing.T) {
	ranked := testutil.ToFloat64(SuggestionsTotal.WithLabelValues("ranked"))
	fallback := testutil.ToFloat64(SuggestionsTotal.WithLabelValues("fallback"))

	RecordSuggestions(1, 2)

	if got := testutil.ToFloat64(SuggestionsTotal.WithLabelValues("ranked")) - ranked; got != 1 {
		t.Errorf("ranked delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SuggestionsTotal.WithLabelValues("fallback")) - fallback; got != 2 {
		t.Errorf("fallback delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}

func histogramCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	m, ok := h.(prometheus.Metric)
	if !ok {
		t.Fatal("observer is not a metric")
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordPipeline(t *testing.T) {
	before := histogramCount(t, PipelineDuration.WithLabelValues("metrics-test"))
	RecordPipeline("metrics-test", 3*time.Millisecond)
	RecordPipeline("metrics-test", 5*time.Millisecond)
	if got := histogramCount(t, PipelineDuration.WithLabelValues("metrics-test")) - before; got != 2 {
		t.Errorf("pipeline observations = %d, want 2", got)
	}
}
