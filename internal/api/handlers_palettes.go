// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/kalainayam/internal/catalog"
	"github.com/tomtom215/kalainayam/internal/validation"
)

// PaletteResponse is the /palettes payload.
type PaletteResponse struct {
	Kind      string                 `json:"kind"`
	Requested string                 `json:"requested"`
	Resolved  string                 `json:"resolved"`
	Fallback  bool                   `json:"fallback"`
	Colors    []catalog.PaletteEntry `json:"colors"`
}

// CatalogResponse lists the keys the catalog recognizes.
type CatalogResponse struct {
	Seasons   []string `json:"seasons"`
	Styles    []string `json:"styles"`
	Focuses   []string `json:"focuses"`
	Audiences []string `json:"audiences"`
}

// Palette handles GET /api/v1/palettes/{kind}/{key}. Unknown keys answer
// with the default palette and fallback=true.
func (h *Handler) Palette(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := PaletteRequest{
		Kind: catalog.NormalizeKey(chi.URLParam(r, "kind")),
		Key:  chi.URLParam(r, "key"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	kind := catalog.Kind(req.Kind)
	resolved := h.resolvePalette(req.Key, kind)
	rw.Success(PaletteResponse{
		Kind:      req.Kind,
		Requested: req.Key,
		Resolved:  resolved,
		Fallback:  resolved != catalog.NormalizeKey(req.Key),
		Colors:    h.catalog.PaletteFor(req.Key, kind),
	})
}

func (h *Handler) resolvePalette(key string, kind catalog.Kind) string {
	if kind == catalog.KindStyle {
		return h.catalog.ResolveStyle(key)
	}
	return h.catalog.ResolveSeason(key)
}

// Catalog handles GET /api/v1/catalog.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(CatalogResponse{
		Seasons:   h.catalog.Keys(catalog.KindSeason),
		Styles:    h.catalog.Keys(catalog.KindStyle),
		Focuses:   h.catalog.Focuses(),
		Audiences: h.catalog.Audiences(),
	})
}
