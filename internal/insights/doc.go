// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

// Package insights bundles aggregate statistics into the market reports
// served by the API.
//
// Compute reports on the retail transactions store: best sellers, price and
// rating distributions, payment mix, a daily trend window, style families
// and fashion trend hints. StyleInsights reports on the product review
// store: popular and best-rated product classes.
//
// Percentages are rounded to two decimals. Statistics over an empty sample
// are unavailable (JSON null), never zero.
package insights
