// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package middleware provides the HTTP middleware that wraps every API route.

# Middleware

  - RequestID: accepts or generates X-Request-ID and seeds the logging
    context with request and correlation IDs
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled
    by chi route pattern to keep label cardinality bounded
  - AccessLog: one structured zerolog line per request, at warn level when
    the request exceeds the slow threshold

All middleware use the func(http.Handler) http.Handler shape so they plug
into chi's Use.
*/
package middleware
