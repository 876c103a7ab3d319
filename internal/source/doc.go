// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

// Package source reads raw dataset tables from CSV files, Excel workbooks or
// DuckDB queries. Readers return a records.Table of untyped strings; typing
// and row validation happen in records.Build.
//
// A Loader wraps any Reader with a circuit breaker so a dataset that keeps
// failing (missing file, locked workbook, bad query) is not re-read on every
// reload tick.
package source
