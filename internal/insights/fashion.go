// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package insights

import (
	"github.com/tomtom215/kalainayam/internal/aggregate"
	"github.com/tomtom215/kalainayam/internal/catalog"
)

// fashionTopItems is how many best sellers feed the style mix.
const fashionTopItems = 5

// Fashion summarizes what is trending among the best sellers.
type Fashion struct {
	Styles  []StyleTrend           `json:"styles"`
	Colors  []catalog.PaletteEntry `json:"colors"`
	Fabrics []string               `json:"fabrics"`
}

// StyleTrend is a fashion style's share of the top sellers.
type StyleTrend struct {
	Style      string  `json:"style"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func fashionInsights(items []aggregate.Group, cat *catalog.Catalog) Fashion {
	top := topItems(items, 0, fashionTopItems)

	var styles []StyleTrend
	index := make(map[string]int)
	total := 0
	for _, it := range top {
		style := cat.FashionStyle(it.Item)
		pos, ok := index[style]
		if !ok {
			pos = len(styles)
			index[style] = pos
			styles = append(styles, StyleTrend{Style: style})
		}
		styles[pos].Count += it.Count
		total += it.Count
	}
	for i := range styles {
		styles[i].Percentage = percent(styles[i].Count, total)
	}

	return Fashion{
		Styles:  styles,
		Colors:  cat.PaletteFor(catalog.DefaultStyle, catalog.KindStyle),
		Fabrics: cat.TrendingFabrics(),
	}
}
