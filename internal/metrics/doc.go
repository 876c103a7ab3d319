// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package metrics declares the Prometheus collectors exported at /metrics.

# Available Metrics

API:
  - kalainayam_api_requests_total{method,endpoint,status}
  - kalainayam_api_request_duration_seconds{method,endpoint}
  - kalainayam_api_active_requests

Datasets:
  - kalainayam_dataset_loads_total{dataset,result}
  - kalainayam_dataset_load_duration_seconds{dataset,format}
  - kalainayam_dataset_records{dataset}
  - kalainayam_dataset_rows_dropped_total{dataset,reason}
  - kalainayam_dataset_last_load_timestamp_seconds{dataset}

Pipeline:
  - kalainayam_pipeline_duration_seconds{operation}
  - kalainayam_suggestions_total{kind}
  - kalainayam_insights_cache_total{result}

Circuit breaker:
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

All collectors register on the default registry through promauto.
*/
package metrics
