// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

// Package aggregate computes grouped summary statistics over a records.Store.
//
// All functions are total over a well-formed store: sparse data, zero
// variance and metrics that are missing everywhere degrade to unavailable
// values (records.Float with Valid=false) instead of NaN or an error.
//
// Groups are emitted in first-encountered order, which makes every result
// deterministic for a given store. Downstream ranking relies on that order as
// its tie-break.
package aggregate
