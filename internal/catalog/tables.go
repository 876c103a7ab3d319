// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package catalog

import "strconv"

// Default returns the built-in catalog. Each call builds fresh maps, so no
// caller can reach another caller's tables.
func Default() *Catalog {
	return &Catalog{
		seasons: map[string][]PaletteEntry{
			"spring": seasonPalette("Spring", "#f7e9e6", "#c9a15b", "#d4a5a5"),
			"summer": seasonPalette("Summer", "#f7e9e6", "#b3d9e8", "#f4d47f"),
			"autumn": seasonPalette("Autumn", "#4a0e1b", "#c9a15b", "#8b6f47"),
			"winter": seasonPalette("Winter", "#4a0e1b", "#1b1b1b", "#b3d9e8"),
		},
		styles: map[string][]PaletteEntry{
			"formal": {
				{Hex: "#4a0e1b", Name: "Deep Burgundy", Mood: "Sophisticated"},
				{Hex: "#1b1b1b", Name: "Black", Mood: "Classic"},
				{Hex: "#2d3142", Name: "Navy", Mood: "Elegant"},
			},
			"casual": {
				{Hex: "#7b7b7b", Name: "Charcoal", Mood: "Contemporary"},
				{Hex: "#f7e9e6", Name: "Cream", Mood: "Neutral"},
				{Hex: "#5a6f7d", Name: "Blue-Grey", Mood: "Calm"},
			},
			"fashion_forward": {
				{Hex: "#b33b4a", Name: "Wine Red", Mood: "Bold"},
				{Hex: "#c9a15b", Name: "Soft Gold", Mood: "Luxe"},
				{Hex: "#7b1127", Name: "Maroon", Mood: "Powerful"},
			},
		},
		materials: map[string][]string{
			"Dresses":   {"Cotton", "Silk", "Polyester"},
			"Tops":      {"Cotton", "Viscose", "Linen"},
			"Blouses":   {"Viscose", "Silk"},
			"Pants":     {"Denim", "Cotton"},
			"Outerwear": {"Wool Blend", "Polyester"},
			"Intimates": {"Modal", "Cotton"},
			"Skirts":    {"Cotton", "Poly Blend"},
			"Knits":     {"Wool", "Acrylic", "Cotton"},
			"Default":   {"Cotton Blend", "Polyester"},
		},
		focus: map[string][]string{
			"tailoring": {"Dresses", "Blazers", "Trousers", "Outerwear"},
			"street":    {"Tops", "Bottoms", "Knits", "Skirts"},
			"romantic":  {"Dresses", "Blouses", "Skirts"},
			"minimal":   {"Tops", "Trousers", "Knits"},
		},
		audiences: map[string]string{
			"women":   "contemporary women",
			"premium": "premium/luxury women 30+",
			"petite":  "petite-fit women",
			"plus":    "plus-size women",
		},
		families: families(map[string][]string{
			"Casual":      {"T-Shirt", "T-shirt", "Jeans", "Shorts", "Casual Jacket", "Sneakers"},
			"Formal":      {"Dress Shirt", "Trousers", "Blazer", "Formal Dress"},
			"Athletic":    {"Athletic Shoes", "Sports Bra", "Running Shorts", "Yoga Pants"},
			"Accessories": {"Sunglasses", "Hat", "Belt", "Scarf", "Watch", "Handbag"},
			"Footwear":    {"Boots", "Sandals", "Loafers", "Heels", "Flats", "Flip-Flops"},
			"Outerwear":   {"Winter Coat", "Cardigan", "Hoodie", "Rain Jacket", "Sweater", "Jacket", "Trench Coat", "Poncho"},
		}),
		fashion: []styleRule{
			{"Jacket", "Structured Tailoring"},
			{"Blazer", "Formal Wear"},
			{"Jeans", "Casual Wear"},
			{"Dress", "Occasion Wear"},
			{"Tunic", "Casual Wear"},
			{"Trousers", "Formal Wear"},
			{"T-shirt", "Basic Essentials"},
			{"Shoes", "Footwear"},
			{"Boots", "Footwear"},
			{"Loafers", "Footwear"},
			{"Trench Coat", "Outerwear"},
			{"Sweater", "Knitwear"},
			{"Leggings", "Basics"},
			{"Shorts", "Casual Wear"},
		},
		fabrics: []string{"Denim", "Cotton Blend", "Rib Knit", "Linen Blend", "Technical Jersey"},
	}
}

func seasonPalette(title string, hexes ...string) []PaletteEntry {
	entries := make([]PaletteEntry, len(hexes))
	for i, h := range hexes {
		entries[i] = PaletteEntry{Hex: h, Name: title + " Color " + strconv.Itoa(i+1)}
	}
	return entries
}

func families(byFamily map[string][]string) map[string]string {
	out := make(map[string]string)
	for family, items := range byFamily {
		for _, item := range items {
			out[item] = family
		}
	}
	return out
}
