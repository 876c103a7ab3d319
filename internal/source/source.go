// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/kalainayam/internal/records"
)

// Supported formats.
const (
	FormatCSV    = "csv"
	FormatXLSX   = "xlsx"
	FormatDuckDB = "duckdb"
)

// Reader produces one raw table per call.
type Reader interface {
	Read(ctx context.Context) (records.Table, error)
}

// Options selects and configures a Reader.
type Options struct {
	Path   string
	Format string
	// Sheet is the worksheet for xlsx sources; empty selects the first sheet.
	Sheet string
	// Query replaces the default read_csv query for duckdb sources.
	Query string
	// TimeLayout formats DATE/TIMESTAMP values returned by duckdb.
	TimeLayout string
}

// New returns the Reader for opts.Format. An empty format is inferred from
// the path extension.
func New(opts Options) (Reader, error) {
	format := ResolveFormat(opts)
	if opts.Path == "" && !(format == FormatDuckDB && opts.Query != "") {
		return nil, fmt.Errorf("source: path is required for %q format", format)
	}

	switch format {
	case FormatCSV:
		return &CSVReader{Path: opts.Path}, nil
	case FormatXLSX:
		return &XLSXReader{Path: opts.Path, Sheet: opts.Sheet}, nil
	case FormatDuckDB:
		return &DuckDBReader{Path: opts.Path, Query: opts.Query, TimeLayout: opts.TimeLayout}, nil
	default:
		return nil, fmt.Errorf("source: unsupported format %q", opts.Format)
	}
}

// ResolveFormat returns the normalized format New would use for opts.
func ResolveFormat(opts Options) string {
	if format := strings.ToLower(strings.TrimSpace(opts.Format)); format != "" {
		return format
	}
	return formatFromPath(opts.Path)
}

func formatFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xlsm"):
		return FormatXLSX
	case strings.HasSuffix(lower, ".duckdb"), strings.HasSuffix(lower, ".parquet"):
		return FormatDuckDB
	default:
		return FormatCSV
	}
}
