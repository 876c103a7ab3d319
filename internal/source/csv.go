// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/kalainayam/internal/records"
)

// CSVReader reads a comma-separated file with a header row.
type CSVReader struct {
	Path string
}

// Read implements Reader.
func (r *CSVReader) Read(ctx context.Context) (records.Table, error) {
	file, err := os.Open(r.Path)
	if err != nil {
		return records.Table{}, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return readCSV(ctx, file)
}

func readCSV(ctx context.Context, in io.Reader) (records.Table, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		return records.Table{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	table := records.Table{Header: header}
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return records.Table{}, err
			}
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return records.Table{}, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
