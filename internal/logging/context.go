// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// NewRequestID returns a full UUID.
func NewRequestID() string {
	return uuid.New().String()
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns "" when no id is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ContextWithNewCorrelationID tags ctx with an eight character id that ties
// the log lines of one request together, including those of work it hands off.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, correlationIDKey, uuid.New().String()[:8])
}

func correlationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// Ctx returns the global logger carrying the ids found in ctx.
//
//	logging.Ctx(r.Context()).Info().Int("top_k", k).Msg("Suggestions generated")
func Ctx(ctx context.Context) *zerolog.Logger {
	lc := Logger().With()
	if id := correlationID(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	l := lc.Logger()
	return &l
}
