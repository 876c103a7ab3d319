// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/kalainayam/internal/records"
)

// XLSXReader reads one worksheet of an Excel workbook. The first row is the
// header.
type XLSXReader struct {
	Path  string
	Sheet string
}

// Read implements Reader.
func (r *XLSXReader) Read(ctx context.Context) (records.Table, error) {
	f, err := excelize.OpenFile(r.Path)
	if err != nil {
		return records.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := r.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return records.Table{}, fmt.Errorf("workbook %s has no sheets", r.Path)
		}
		sheet = sheets[0]
	}

	if err := ctx.Err(); err != nil {
		return records.Table{}, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return records.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return records.Table{}, fmt.Errorf("sheet %q is empty", sheet)
	}

	return records.Table{Header: rows[0], Rows: rows[1:]}, nil
}
