// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is built on first use. Field names in errors are
taken from json tags (falling back to query tags) so messages name the
parameter the client actually sent.

# Custom Tags

  - catalogkey: letters, digits, spaces, underscores and hyphens; used for
    season, audience, focus, price and palette keys. Unknown keys are not a
    validation failure; lookups fall back to documented defaults.

# Example

	type SuggestionRequest struct {
	    Season string `json:"season" validate:"omitempty,max=64,catalogkey"`
	    TopK   int    `json:"top_k" validate:"min=0,max=12"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	}
*/
package validation
