// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalainayam_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kalainayam_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kalainayam_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Dataset Metrics
	DatasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalainayam_dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"dataset", "result"}, // result: "success", "schema_error", "error"
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kalainayam_dataset_load_duration_seconds",
			Help:    "Duration of dataset reads and normalization in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"dataset", "format"},
	)

	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kalainayam_dataset_records",
			Help: "Number of records in the current dataset snapshot",
		},
		[]string{"dataset"},
	)

	DatasetRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalainayam_dataset_rows_dropped_total",
			Help: "Rows dropped during normalization",
		},
		[]string{"dataset", "reason"}, // reason: "missing_id", "bad_time"
	)

	DatasetLastLoad = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kalainayam_dataset_last_load_timestamp_seconds",
			Help: "Unix time of the last successful load",
		},
		[]string{"dataset"},
	)

	// Pipeline Metrics
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kalainayam_pipeline_duration_seconds",
			Help:    "Duration of insight and suggestion computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "insights", "style_insights", "suggestions"
	)

	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalainayam_suggestions_total",
			Help: "Suggestions returned, by kind",
		},
		[]string{"kind"}, // "ranked", "fallback"
	)

	InsightsCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalainayam_insights_cache_total",
			Help: "Insight cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDatasetLoad records the outcome of one dataset load. kept, missingID
// and badTime are only meaningful on success.
func RecordDatasetLoad(dataset, format, result string, duration time.Duration, kept, missingID, badTime int) {
	DatasetLoads.WithLabelValues(dataset, result).Inc()
	DatasetLoadDuration.WithLabelValues(dataset, format).Observe(duration.Seconds())
	if result != "success" {
		return
	}
	DatasetRecords.WithLabelValues(dataset).Set(float64(kept))
	DatasetRowsDropped.WithLabelValues(dataset, "missing_id").Add(float64(missingID))
	DatasetRowsDropped.WithLabelValues(dataset, "bad_time").Add(float64(badTime))
	DatasetLastLoad.WithLabelValues(dataset).Set(float64(time.Now().Unix()))
}

// RecordPipeline records one pipeline computation.
func RecordPipeline(operation string, duration time.Duration) {
	PipelineDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordSuggestions counts ranked and fallback suggestions of one response.
func RecordSuggestions(ranked, fallback int) {
	SuggestionsTotal.WithLabelValues("ranked").Add(float64(ranked))
	SuggestionsTotal.WithLabelValues("fallback").Add(float64(fallback))
}

// RecordInsightsCache counts a cache lookup.
func RecordInsightsCache(hit bool) {
	if hit {
		InsightsCache.WithLabelValues("hit").Inc()
		return
	}
	InsightsCache.WithLabelValues("miss").Inc()
}
