// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCtxAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithNewCorrelationID(ctx)
	Ctx(ctx).Info().Msg("hello")
	componentLogger := WithComponent("recommend")
	componentLogger.Warn().Msg("tagged")

	out := buf.String()
	for _, want := range []string{
		`"request_id":"req-1"`,
		`"correlation_id":"` + correlationID(ctx) + `"`,
		`"component":"recommend"`,
		`"time":`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestIDs(t *testing.T) {
	t.Parallel()

	empty := context.Background()
	if got := RequestIDFromContext(empty); got != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", got)
	}
	if got := correlationID(empty); got != "" {
		t.Errorf("correlationID = %q, want empty", got)
	}
	if got := len(correlationID(ContextWithNewCorrelationID(empty))); got != 8 {
		t.Errorf("correlation id length = %d, want 8", got)
	}
	a, b := NewRequestID(), NewRequestID()
	if len(a) != 36 || a == b {
		t.Errorf("NewRequestID() = %q, %q", a, b)
	}
}

func TestSlogHandlerWritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(&slogHandler{logger: zerolog.New(&buf)})
	logger.With("pid", 7).WithGroup("supervisor").With("tree", "root").Warn("service restarted",
		"service", "dataset-reload", "attempt", 2, slog.Group("backoff", "seconds", 1.5))
	logger.Debug("dropped")

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"pid":7`,
		`"supervisor.tree":"root"`,
		`"supervisor.service":"dataset-reload"`,
		`"supervisor.attempt":2`,
		`"supervisor.backoff.seconds":1.5`,
		"service restarted",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
	if strings.Contains(out, "dropped") {
		t.Errorf("debug record written at info level: %s", out)
	}
}
