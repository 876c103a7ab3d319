// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package source

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/kalainayam/internal/records"
)

// DuckDBReader runs a query in an in-memory DuckDB instance. Without a
// Query it reads Path through read_csv with every column typed VARCHAR, so
// parsing stays with records.Build.
type DuckDBReader struct {
	Path       string
	Query      string
	TimeLayout string
}

// Read implements Reader.
func (r *DuckDBReader) Read(ctx context.Context) (records.Table, error) {
	conn, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return records.Table{}, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, r.query())
	if err != nil {
		return records.Table{}, fmt.Errorf("duckdb query failed: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return records.Table{}, fmt.Errorf("failed to read result columns: %w", err)
	}

	layout := r.TimeLayout
	if layout == "" {
		layout = records.SalesDateLayout
	}

	table := records.Table{Header: header}
	values := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return records.Table{}, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = stringify(v, layout)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return records.Table{}, fmt.Errorf("row iteration failed: %w", err)
	}
	return table, nil
}

func (r *DuckDBReader) query() string {
	if r.Query != "" {
		return r.Query
	}
	path := strings.ReplaceAll(r.Path, "'", "''")
	return fmt.Sprintf("SELECT * FROM read_csv('%s', header = true, all_varchar = true)", path)
}

func stringify(v any, layout string) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(layout)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
