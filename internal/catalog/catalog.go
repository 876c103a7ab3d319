// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

// Package catalog holds the static lookup tables used to compose collection
// suggestions: color palettes by season and style, materials by product
// class, product classes by design focus, and audience descriptions.
//
// The tables are immutable. Every accessor returns a copy, and every lookup
// with an unrecognized key silently resolves to a documented default:
//
//	season   -> spring
//	style    -> fashion_forward
//	focus    -> tailoring
//	audience -> women
//	class    -> Default materials
//
// Call Validate once at startup to fail fast on a broken table.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Kind selects the palette table.
type Kind string

const (
	KindSeason Kind = "season"
	KindStyle  Kind = "style"
)

// Default keys.
const (
	DefaultSeason   = "spring"
	DefaultStyle    = "fashion_forward"
	DefaultFocus    = "tailoring"
	DefaultAudience = "women"
	DefaultClass    = "Default"
)

// PaletteEntry is one color of a palette.
type PaletteEntry struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
	Mood string `json:"mood,omitempty"`
}

// Catalog is the immutable set of lookup tables.
type Catalog struct {
	seasons   map[string][]PaletteEntry
	styles    map[string][]PaletteEntry
	materials map[string][]string
	focus     map[string][]string
	audiences map[string]string
	families  map[string]string
	fashion   []styleRule
	fabrics   []string
}

type styleRule struct {
	match string
	style string
}

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Validate checks that every table carries its default key and well-formed
// entries.
func (c *Catalog) Validate() error {
	var errs []error

	checkPalettes := func(kind Kind, table map[string][]PaletteEntry, def string) {
		if _, ok := table[def]; !ok {
			errs = append(errs, fmt.Errorf("%s palettes: default %q missing", kind, def))
		}
		for key, entries := range table {
			if len(entries) == 0 {
				errs = append(errs, fmt.Errorf("%s palette %q is empty", kind, key))
			}
			for _, e := range entries {
				if !hexColor.MatchString(e.Hex) {
					errs = append(errs, fmt.Errorf("%s palette %q: invalid hex %q", kind, key, e.Hex))
				}
				if e.Name == "" {
					errs = append(errs, fmt.Errorf("%s palette %q: unnamed color %s", kind, key, e.Hex))
				}
			}
		}
	}
	checkPalettes(KindSeason, c.seasons, DefaultSeason)
	checkPalettes(KindStyle, c.styles, DefaultStyle)

	checkLists := func(name string, table map[string][]string, def string) {
		if _, ok := table[def]; !ok {
			errs = append(errs, fmt.Errorf("%s: default %q missing", name, def))
		}
		for key, list := range table {
			if len(list) == 0 {
				errs = append(errs, fmt.Errorf("%s %q is empty", name, key))
			}
		}
	}
	checkLists("materials", c.materials, DefaultClass)
	checkLists("focus", c.focus, DefaultFocus)

	if _, ok := c.audiences[DefaultAudience]; !ok {
		errs = append(errs, fmt.Errorf("audiences: default %q missing", DefaultAudience))
	}

	return errors.Join(errs...)
}

// NormalizeKey lowercases and maps spaces and hyphens to underscores, so
// "Fashion-Forward" and "fashion_forward" are the same key.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(key)
}

// PaletteFor returns the palette for key. Unknown keys fall back to spring
// for seasons and fashion_forward for styles.
func (c *Catalog) PaletteFor(key string, kind Kind) []PaletteEntry {
	table, def := c.seasons, DefaultSeason
	if kind == KindStyle {
		table, def = c.styles, DefaultStyle
	}
	entries, ok := table[NormalizeKey(key)]
	if !ok {
		entries = table[def]
	}
	out := make([]PaletteEntry, len(entries))
	copy(out, entries)
	return out
}

// ResolveSeason maps key to a known season, spring when unknown.
func (c *Catalog) ResolveSeason(key string) string {
	return resolve(c.seasons, NormalizeKey(key), DefaultSeason)
}

// ResolveStyle maps key to a known style palette, fashion_forward when
// unknown.
func (c *Catalog) ResolveStyle(key string) string {
	return resolve(c.styles, NormalizeKey(key), DefaultStyle)
}

// ResolveFocus maps key to a known focus, tailoring when unknown.
func (c *Catalog) ResolveFocus(key string) string {
	return resolve(c.focus, NormalizeKey(key), DefaultFocus)
}

// ResolveAudience maps key to a known audience, women when unknown.
func (c *Catalog) ResolveAudience(key string) string {
	return resolve(c.audiences, NormalizeKey(key), DefaultAudience)
}

func resolve[V any](table map[string]V, key, def string) string {
	if _, ok := table[key]; ok {
		return key
	}
	return def
}

// FocusClasses returns the product classes allowed for a focus.
func (c *Catalog) FocusClasses(focus string) []string {
	return clone(c.focus[c.ResolveFocus(focus)])
}

// AudienceContext returns the human description of an audience.
func (c *Catalog) AudienceContext(audience string) string {
	return c.audiences[c.ResolveAudience(audience)]
}

// Materials returns the materials for a product class, Default when the
// class is not listed. Class names match exactly.
func (c *Catalog) Materials(class string) []string {
	if m, ok := c.materials[class]; ok {
		return clone(m)
	}
	return clone(c.materials[DefaultClass])
}

// StyleFamily maps a purchased item name to its family (Casual, Formal,
// Athletic, Accessories, Footwear, Outerwear), Other when unlisted.
func (c *Catalog) StyleFamily(item string) string {
	if f, ok := c.families[item]; ok {
		return f
	}
	return "Other"
}

// FashionStyle maps an item name to a trend style by substring, "Fashion
// Item" when nothing matches. The first matching rule wins.
func (c *Catalog) FashionStyle(item string) string {
	for _, r := range c.fashion {
		if strings.Contains(item, r.match) {
			return r.style
		}
	}
	return "Fashion Item"
}

// TrendingFabrics returns the current fabric trend list.
func (c *Catalog) TrendingFabrics() []string {
	return clone(c.fabrics)
}

// Keys returns the sorted keys of a palette table.
func (c *Catalog) Keys(kind Kind) []string {
	table := c.seasons
	if kind == KindStyle {
		table = c.styles
	}
	return sortedKeys(table)
}

// Focuses returns the sorted focus keys.
func (c *Catalog) Focuses() []string { return sortedKeys(c.focus) }

// Audiences returns the sorted audience keys.
func (c *Catalog) Audiences() []string { return sortedKeys(c.audiences) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
