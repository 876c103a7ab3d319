// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package cache provides a thread-safe in-memory TTL cache for computed
insight bundles.

# Overview

Insights are pure functions of a dataset snapshot, so keys embed the snapshot
version (see GenerateKey). A reload publishes a new version and old entries
simply stop being requested; they age out through TTL expiry and the cleanup
loop.

# Usage Example

	c := cache.New[*insights.Insights](5 * time.Minute)
	key := cache.GenerateKey("trends", struct {
	    Version uint64
	    Days    int
	}{snap.Version, 28})
	report, hit := c.GetOrCompute(key, func() *insights.Insights {
	    return insights.Compute(snap.Sales, cat, opts)
	})

# Cleanup

Expired entries are removed lazily on Get and periodically by Serve, which is
run under the supervisor and stops when its context is cancelled.
*/
package cache
