// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package records

import (
	"math"
	"strconv"
)

// Float is a number that may be unavailable. It serializes to JSON null when
// unavailable so NaN never reaches a response.
type Float struct {
	Value float64
	Valid bool
}

// Some returns a valid Float. Non-finite values are treated as unavailable.
func Some(v float64) Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

// Or returns the value, or def when unavailable.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}

// Round returns f rounded to the given number of decimal places.
func (f Float) Round(places int) Float {
	if !f.Valid {
		return f
	}
	return Some(Round(f.Value, places))
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f.Value, 'f', -1, 64), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Some(v)
	return nil
}

// Round rounds half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// ParseFloat parses a metric cell. Empty, unparsable and non-finite input is
// unavailable.
func ParseFloat(s string) Float {
	if s == "" {
		return Float{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}
	}
	return Some(v)
}
