// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package api serves the trend, suggestion and style insight endpoints over a
chi router.

# Endpoints

	GET  /api/health                    liveness (legacy path)
	GET  /api/v1/health/live            liveness
	GET  /api/v1/health/ready           503 until a dataset snapshot is loaded
	GET  /api/v1/trends                 ?days=28&region=global
	GET  /api/v1/trends/detailed        full sales insight bundle
	POST /api/v1/suggestions            {season, audience, price, focus, top_k}
	GET  /api/v1/style-insights         review based class insights
	GET  /api/v1/palettes/{kind}/{key}  palette lookup with default fallback
	GET  /api/v1/catalog                valid seasons, styles, focuses, audiences
	POST /api/v1/datasets/reload        re-read datasets and swap the snapshot
	GET  /metrics                       Prometheus

# Response Format

Every JSON endpoint answers with the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "VALIDATION_ERROR", "message": "..."}, "meta": {...}}

# Caching

Insight bundles are cached per snapshot version and query, so a reload never
serves a report computed from the previous snapshot.
*/
package api
