// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package records

import (
	"fmt"
	"strings"
)

// Column describes one source column. Aliases are alternative header names
// accepted for the same column.
type Column struct {
	Name     string
	Aliases  []string
	Optional bool
}

// TimeColumn is a column parsed with a fixed layout.
type TimeColumn struct {
	Column
	Layout string
}

// Schema describes one dataset.
type Schema struct {
	Name string

	// ID is the grouping identifier. Rows with an empty identifier are dropped.
	ID Column

	// NumericID normalizes integral numbers so "1077.0" and "1077" group together.
	NumericID bool

	Metrics      []Column
	Categoricals []Column

	// Time is optional.
	Time *TimeColumn

	// Temporal marks a store that takes part in temporal aggregation. Rows
	// with an unparsable timestamp are dropped only when set.
	Temporal bool
}

// SchemaError reports required columns absent from the input header.
type SchemaError struct {
	Schema  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Schema, strings.Join(e.Missing, ", "))
}

// Table is raw tabular input, already read from a file or database.
type Table struct {
	Header []string
	Rows   [][]string
}

// Sales dataset columns.
const (
	ColCustomer = "Customer Reference ID"
	ColItem     = "Item Purchased"
	ColAmount   = "Purchase Amount (USD)"
	ColDate     = "Date Purchase"
	ColRating   = "Review Rating"
	ColPayment  = "Payment Method"

	// SalesDateLayout is day-month-year.
	SalesDateLayout = "02-01-2006"
)

// Review dataset columns.
const (
	ColClothingID   = "Clothing ID"
	ColAge          = "Age"
	ColReviewRating = "Rating"
	ColRecommended  = "Recommended IND"
	ColFeedback     = "Positive Feedback Count"
	ColDivision     = "Division Name"
	ColDepartment   = "Department Name"
	ColClass        = "Class Name"
)

// SalesSchema describes the retail transactions file.
func SalesSchema() Schema {
	return Schema{
		Name: "sales",
		ID:   Column{Name: ColItem},
		Metrics: []Column{
			{Name: ColAmount, Aliases: []string{"Purchase Amount"}},
			{Name: ColRating},
		},
		Categoricals: []Column{
			{Name: ColPayment},
			{Name: ColCustomer, Aliases: []string{"Customer ID"}},
		},
		Time:     &TimeColumn{Column: Column{Name: ColDate, Aliases: []string{"Date"}}, Layout: SalesDateLayout},
		Temporal: true,
	}
}

// ReviewSchema describes the product review file.
func ReviewSchema() Schema {
	return Schema{
		Name:      "reviews",
		ID:        Column{Name: ColClothingID},
		NumericID: true,
		Metrics: []Column{
			{Name: ColReviewRating},
			{Name: ColFeedback, Optional: true},
			{Name: ColRecommended, Optional: true},
			{Name: ColAge, Optional: true},
		},
		Categoricals: []Column{
			{Name: ColDepartment},
			{Name: ColClass},
			{Name: ColDivision, Optional: true},
		},
	}
}
