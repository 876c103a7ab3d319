// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/kalainayam/internal/aggregate"
	"github.com/tomtom215/kalainayam/internal/catalog"
	"github.com/tomtom215/kalainayam/internal/records"
)

const (
	designPrefix = "KLN"
	unknownClass = "Other"
	unknownDept  = "Unknown"
	maxMaterials = 3
)

// Generator composes suggestions from ranked candidates.
type Generator struct {
	catalog        *catalog.Catalog
	demandQuantile float64
}

// NewGenerator returns a Generator reading lookups from cat. demandQuantile
// is the pool score quantile at or above which demand is High.
func NewGenerator(cat *catalog.Catalog, demandQuantile float64) *Generator {
	return &Generator{catalog: cat, demandQuantile: demandQuantile}
}

// resolved holds request parameters mapped onto catalog keys.
type resolved struct {
	season   string
	focus    string
	audience string
	price    string

	initial    string
	palette    []string
	colorNames []string
}

func (g *Generator) resolve(p Params) resolved {
	r := resolved{
		season:   g.catalog.ResolveSeason(p.Season),
		focus:    g.catalog.ResolveFocus(p.Focus),
		audience: g.catalog.ResolveAudience(p.Audience),
		price:    strings.ToLower(strings.TrimSpace(p.Price)),
	}
	if r.price == "" {
		r.price = PriceMid
	}
	r.initial = strings.ToUpper(r.season[:1])

	for _, e := range g.catalog.PaletteFor(r.season, catalog.KindSeason) {
		r.palette = append(r.palette, e.Hex)
		r.colorNames = append(r.colorNames, e.Name)
	}
	return r
}

type generation struct {
	params     resolved
	pool       int
	unfiltered bool
	fallbacks  int
}

// Generate returns exactly topK suggestions, or none when topK <= 0.
func (g *Generator) Generate(ranked []Candidate, p Params, topK int) []Suggestion {
	out, _ := g.generate(ranked, p, topK)
	return out
}

func (g *Generator) generate(ranked []Candidate, p Params, topK int) ([]Suggestion, generation) {
	r := g.resolve(p)
	gen := generation{params: r}
	if topK <= 0 {
		return []Suggestion{}, gen
	}

	pool, unfiltered := FilterByClass(ranked, g.catalog.FocusClasses(r.focus))
	gen.pool, gen.unfiltered = len(pool), unfiltered

	scores := make([]float64, len(pool))
	for i := range pool {
		scores[i] = pool[i].Score
	}
	threshold := aggregate.Quantile(scores, g.demandQuantile)

	diversify := len(pool) > topK
	used := make(map[string]struct{}, topK)
	out := make([]Suggestion, 0, topK)

	for i := range pool {
		if len(out) == topK {
			break
		}
		c := &pool[i]
		if _, dup := used[c.Class]; dup && diversify {
			continue
		}
		used[c.Class] = struct{}{}

		class := c.Class
		if class == "" {
			class = unknownClass
		}

		demand := DemandModerate
		if threshold.Valid && c.Score >= threshold.Value {
			demand = DemandHigh
		}
		key := c.Key

		out = append(out, Suggestion{
			Design:           class + " Edit",
			DesignNumber:     fmt.Sprintf("%s-%s%03d", designPrefix, r.initial, len(out)+1),
			Palette:          cloneStrings(r.palette),
			ColorNames:       cloneStrings(r.colorNames),
			Materials:        g.materials(class, r.price),
			Rationale:        g.rationale(c, class, r),
			MarketDemand:     demand,
			Confidence:       records.Round(c.Confidence, 2),
			SourceIdentifier: &key,
		})
	}

	for j := 1; len(out) < topK; j++ {
		out = append(out, Suggestion{
			Design:       fmt.Sprintf("Classic %s %d", title(r.focus), j),
			DesignNumber: fmt.Sprintf("%s-%sX%02d", designPrefix, r.initial, j),
			Palette:      cloneStrings(r.palette),
			ColorNames:   cloneStrings(r.colorNames),
			Materials:    g.materials(catalog.DefaultClass, r.price),
			Rationale:    fmt.Sprintf("Fallback suggestion for %s / %s", r.audience, r.price),
			MarketDemand: DemandModerate,
			Confidence:   FallbackConfidence,
		})
		gen.fallbacks++
	}
	return out, gen
}

// FilterByClass keeps candidates whose class is in allowed, preserving
// order. When nothing matches it returns ranked unchanged and unfiltered=true.
func FilterByClass(ranked []Candidate, allowed []string) (pool []Candidate, unfiltered bool) {
	allow := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		allow[c] = struct{}{}
	}
	for i := range ranked {
		if _, ok := allow[ranked[i].Class]; ok {
			pool = append(pool, ranked[i])
		}
	}
	if len(pool) == 0 {
		return ranked, true
	}
	return pool, false
}

func (g *Generator) materials(class, price string) []string {
	base := g.catalog.Materials(class)
	switch price {
	case PricePremium:
		base = append([]string{"Silk Blend"}, base...)
	case PriceBudget:
		base = append(base, "Polyester")
	}
	if len(base) > maxMaterials {
		base = base[:maxMaterials]
	}
	return base
}

func (g *Generator) rationale(c *Candidate, class string, r resolved) string {
	rating := "n/a"
	if c.MeanRating.Valid {
		rating = fmt.Sprintf("%.1f", c.MeanRating.Value)
	}
	dept := c.Department
	if dept == "" {
		dept = unknownDept
	}
	return fmt.Sprintf("Based on %d reviews (avg rating %s), popular in %s / %s. Optimized for %s, %s price band.",
		c.Count, rating, dept, class, g.catalog.AudienceContext(r.audience), r.price)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
