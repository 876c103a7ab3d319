// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package records normalizes raw tabular rows into an immutable, typed Store.

A Schema names the identifier column, the numeric metric columns, the
categorical attribute columns and an optional timestamp column. Build checks
the header against the schema, coerces every cell and returns a Store that no
caller can mutate.

# Null Handling

  - A metric cell that does not parse as a finite number is missing (Float
    with Valid=false). It is never zero-filled and never drops the row.
  - A row with an empty identifier is dropped.
  - A row whose timestamp does not parse is dropped only when the schema is
    Temporal; otherwise it is kept with a zero time.
  - A missing categorical value is the empty string ("unknown").

# Errors

A header that lacks a required column yields *SchemaError listing every
missing column. No partial Store is returned.

# Usage

	store, err := records.Build(table, records.SalesSchema())
	var schemaErr *records.SchemaError
	if errors.As(err, &schemaErr) {
	    // schemaErr.Missing
	}
*/
package records
