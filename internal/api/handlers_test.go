// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/kalainayam/internal/cache"
	"github.com/tomtom215/kalainayam/internal/catalog"
	"github.com/tomtom215/kalainayam/internal/dataset"
	"github.com/tomtom215/kalainayam/internal/insights"
	"github.com/tomtom215/kalainayam/internal/recommend"
	"github.com/tomtom215/kalainayam/internal/records"
)

type fakeSnapshots struct {
	mu        sync.Mutex
	current   *dataset.Snapshot
	reloadErr error
	next      *dataset.Snapshot
}

func (f *fakeSnapshots) Current() *dataset.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeSnapshots) Reload(context.Context) (*dataset.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.next != nil {
		f.current = f.next
	}
	return f.current, f.reloadErr
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func salesStore(t *testing.T) *records.Store {
	t.Helper()
	table := records.Table{Header: []string{
		records.ColCustomer, records.ColItem, records.ColAmount,
		records.ColDate, records.ColRating, records.ColPayment,
	}}
	rows := [][]string{
		{"1", "Jacket", "120", "01-03-2023", "4.5", "Cash"},
		{"2", "Jacket", "80", "02-03-2023", "3.5", "Credit Card"},
		{"3", "Sneakers", "60", "03-03-2023", "", "Cash"},
		{"4", "Scarf", "25", "10-01-2023", "2.0", "Credit Card"},
	}
	table.Rows = rows
	store, err := records.Build(table, records.SalesSchema())
	if err != nil {
		t.Fatalf("sales store: %v", err)
	}
	return store
}

func reviewStore(t *testing.T) *records.Store {
	t.Helper()
	store, err := records.Build(records.Table{
		Header: []string{
			records.ColClothingID, records.ColReviewRating, records.ColFeedback,
			records.ColRecommended, records.ColDepartment, records.ColClass,
		},
		Rows: [][]string{
			{"1077", "5", "3", "1", "Dresses", "Dresses"},
			{"1077", "4", "1", "1", "Dresses", "Dresses"},
			{"862", "3", "0", "0", "Tops", "Knits"},
			{"1049", "5", "10", "1", "Bottoms", "Pants"},
		},
	}, records.ReviewSchema())
	if err != nil {
		t.Fatalf("review store: %v", err)
	}
	return store
}

func newTestServer(t *testing.T, snaps *fakeSnapshots) http.Handler {
	t.Helper()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog.Default(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	h := NewHandler(snaps, engine, cache.New[any](time.Minute), insights.DefaultOptions())
	return NewRouter(h, NewChiMiddleware(mwCfg), 0).SetupChi()
}

func loadedSnapshots(t *testing.T) *fakeSnapshots {
	t.Helper()
	return &fakeSnapshots{current: &dataset.Snapshot{
		Sales:    salesStore(t),
		Reviews:  reviewStore(t),
		Version:  1,
		LoadedAt: time.Now(),
	}}
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, target, err, rec.Body.String())
		}
	}
	return rec.Code, env
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	empty := newTestServer(t, &fakeSnapshots{})
	if code, env := do(t, empty, http.MethodGet, "/api/v1/health/live", ""); code != http.StatusOK || !env.Success {
		t.Errorf("live = %d %+v", code, env)
	}
	if code, _ := do(t, empty, http.MethodGet, "/api/health", ""); code != http.StatusOK {
		t.Errorf("legacy health = %d", code)
	}
	code, env := do(t, empty, http.MethodGet, "/api/v1/health/ready", "")
	if code != http.StatusServiceUnavailable || env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("ready before load = %d %+v", code, env.Error)
	}

	loaded := newTestServer(t, loadedSnapshots(t))
	code, env = do(t, loaded, http.MethodGet, "/api/v1/health/ready", "")
	if code != http.StatusOK {
		t.Fatalf("ready after load = %d", code)
	}
	var hs HealthStatus
	if err := json.Unmarshal(env.Data, &hs); err != nil {
		t.Fatal(err)
	}
	if hs.SalesRecords != 4 || hs.ReviewRecords != 4 || hs.SnapshotVersion != 1 {
		t.Errorf("health = %+v", hs)
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, loadedSnapshots(t))

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
		wantLen  int
	}{
		{"defaults", "", http.StatusOK, "", 3},
		{"explicit", `{"season":"autumn","audience":"men","price":"premium","focus":"casual","top_k":5}`, http.StatusOK, "", 5},
		{"unknown keys fall back", `{"season":"monsoon","focus":"space suits","top_k":2}`, http.StatusOK, "", 2},
		{"top_k above max", `{"top_k":13}`, http.StatusBadRequest, ErrCodeValidation, 0},
		{"negative top_k", `{"top_k":-1}`, http.StatusBadRequest, ErrCodeValidation, 0},
		{"bad characters", `{"season":"<script>"}`, http.StatusBadRequest, ErrCodeValidation, 0},
		{"unknown field", `{"colour":"red"}`, http.StatusBadRequest, ErrCodeBadRequest, 0},
		{"malformed", `{"top_k":`, http.StatusBadRequest, ErrCodeBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, env := do(t, srv, http.MethodPost, "/api/v1/suggestions", tt.body)
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%+v)", code, tt.wantCode, env.Error)
			}
			if tt.wantErr != "" {
				if env.Error == nil || env.Error.Code != tt.wantErr {
					t.Fatalf("error = %+v, want %s", env.Error, tt.wantErr)
				}
				return
			}
			var resp recommend.Response
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatal(err)
			}
			if len(resp.Suggestions) != tt.wantLen {
				t.Errorf("suggestions = %d, want %d", len(resp.Suggestions), tt.wantLen)
			}
		})
	}
}

func TestSuggestionsWithoutReviewsAreAllFallback(t *testing.T) {
	t.Parallel()

	snaps := &fakeSnapshots{current: &dataset.Snapshot{Sales: salesStore(t), Version: 3}}
	srv := newTestServer(t, snaps)

	code, env := do(t, srv, http.MethodPost, "/api/v1/suggestions", `{"top_k":4}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Suggestions) != 4 || resp.Metadata.Fallbacks != 4 {
		t.Fatalf("got %d suggestions, %d fallbacks", len(resp.Suggestions), resp.Metadata.Fallbacks)
	}
	for _, s := range resp.Suggestions {
		if s.SourceIdentifier != nil || s.Confidence != recommend.FallbackConfidence {
			t.Errorf("not a fallback: %+v", s)
		}
	}
}

func TestTrends(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, loadedSnapshots(t))

	code, env := do(t, srv, http.MethodGet, "/api/v1/trends?days=7&region=EU", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d %+v", code, env.Error)
	}
	var summary TrendsSummary
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Region != "eu" || summary.WindowDays != 7 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.TopItems) == 0 || summary.TopItems[0].Item != "Jacket" {
		t.Errorf("top items = %+v", summary.TopItems)
	}
	// 7-day window ending 03-03-2023 holds three daily buckets.
	if n := len(summary.TemporalTrends.Buckets); n != 3 {
		t.Errorf("buckets = %d, want 3", n)
	}
	if env.Meta == nil || env.Meta.Cached {
		t.Error("first request should not be cached")
	}

	_, env = do(t, srv, http.MethodGet, "/api/v1/trends?days=7", "")
	if env.Meta == nil || !env.Meta.Cached {
		t.Error("second request should be served from cache")
	}

	for _, q := range []string{"days=abc", "days=0", "days=400", "region=a%3Cb"} {
		code, env := do(t, srv, http.MethodGet, "/api/v1/trends?"+q, "")
		if code != http.StatusBadRequest || env.Error == nil || env.Error.Code != ErrCodeValidation {
			t.Errorf("%s: status = %d error = %+v", q, code, env.Error)
		}
	}
}

func TestTrendsDetailedAndStyles(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, loadedSnapshots(t))

	code, env := do(t, srv, http.MethodGet, "/api/v1/trends/detailed", "")
	if code != http.StatusOK {
		t.Fatalf("detailed status = %d", code)
	}
	var report insights.Insights
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatal(err)
	}
	if report.Overview.TotalRecords != 4 {
		t.Errorf("overview = %+v", report.Overview)
	}

	code, env = do(t, srv, http.MethodGet, "/api/v1/style-insights", "")
	if code != http.StatusOK {
		t.Fatalf("style status = %d", code)
	}
	var styles insights.StyleReport
	if err := json.Unmarshal(env.Data, &styles); err != nil {
		t.Fatal(err)
	}
	if len(styles.Trending) != 3 || styles.Trending[0].Class != "Dresses" {
		t.Errorf("trending = %+v", styles.Trending)
	}

	noReviews := newTestServer(t, &fakeSnapshots{current: &dataset.Snapshot{Sales: salesStore(t), Version: 1}})
	if code, _ := do(t, noReviews, http.MethodGet, "/api/v1/style-insights", ""); code != http.StatusServiceUnavailable {
		t.Errorf("style insights without reviews = %d", code)
	}
}

func TestPalette(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &fakeSnapshots{})

	tests := []struct {
		path         string
		wantCode     int
		wantResolved string
		wantFallback bool
	}{
		{"/api/v1/palettes/season/winter", http.StatusOK, "winter", false},
		{"/api/v1/palettes/season/monsoon", http.StatusOK, "spring", true},
		{"/api/v1/palettes/style/Fashion-Forward", http.StatusOK, "fashion_forward", false},
		{"/api/v1/palettes/style/punk", http.StatusOK, "fashion_forward", true},
		{"/api/v1/palettes/mood/calm", http.StatusBadRequest, "", false},
	}

	for _, tt := range tests {
		code, env := do(t, srv, http.MethodGet, tt.path, "")
		if code != tt.wantCode {
			t.Errorf("%s: status = %d, want %d", tt.path, code, tt.wantCode)
			continue
		}
		if code != http.StatusOK {
			continue
		}
		var p PaletteResponse
		if err := json.Unmarshal(env.Data, &p); err != nil {
			t.Fatal(err)
		}
		if p.Resolved != tt.wantResolved || p.Fallback != tt.wantFallback || len(p.Colors) == 0 {
			t.Errorf("%s: %+v", tt.path, p)
		}
	}
}

func TestCatalogEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &fakeSnapshots{})
	code, env := do(t, srv, http.MethodGet, "/api/v1/catalog", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var c CatalogResponse
	if err := json.Unmarshal(env.Data, &c); err != nil {
		t.Fatal(err)
	}
	if len(c.Seasons) != 4 || len(c.Focuses) == 0 || len(c.Audiences) == 0 {
		t.Errorf("catalog = %+v", c)
	}
}

func TestReloadDatasets(t *testing.T) {
	t.Parallel()

	t.Run("schema error", func(t *testing.T) {
		t.Parallel()
		snaps := &fakeSnapshots{reloadErr: &records.SchemaError{Schema: "sales", Missing: []string{records.ColItem}}}
		code, env := do(t, newTestServer(t, snaps), http.MethodPost, "/api/v1/datasets/reload", "")
		if code != http.StatusUnprocessableEntity || env.Error == nil || env.Error.Code != ErrCodeSchema {
			t.Fatalf("status = %d error = %+v", code, env.Error)
		}
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		snaps := &fakeSnapshots{next: &dataset.Snapshot{Sales: salesStore(t), Version: 2, LoadedAt: time.Now()}}
		code, env := do(t, newTestServer(t, snaps), http.MethodPost, "/api/v1/datasets/reload", "")
		if code != http.StatusOK {
			t.Fatalf("status = %d error = %+v", code, env.Error)
		}
		var res ReloadResult
		if err := json.Unmarshal(env.Data, &res); err != nil {
			t.Fatal(err)
		}
		if res.SnapshotVersion != 2 || res.SalesRecords != 4 || len(res.Warnings) != 0 {
			t.Errorf("result = %+v", res)
		}
	})
}

func TestUnknownRouteAndMetrics(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &fakeSnapshots{})
	code, env := do(t, srv, http.MethodGet, "/api/v1/nope", "")
	if code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route = %d %+v", code, env.Error)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "kalainayam_api_requests_total") {
		t.Errorf("metrics = %d", rec.Code)
	}
}

func TestRequestIDInEnvelope(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &fakeSnapshots{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Meta == nil || env.Meta.RequestID != "req-42" || rec.Header().Get("X-Request-ID") != "req-42" {
		t.Errorf("meta = %+v", env.Meta)
	}
}

func TestRateLimitReturnsEnvelope(t *testing.T) {
	t.Parallel()

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog.Default(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitRequests = 1
	mwCfg.RateLimitWindow = time.Minute
	h := NewHandler(&fakeSnapshots{}, engine, nil, insights.DefaultOptions())
	srv := NewRouter(h, NewChiMiddleware(mwCfg), 0).SetupChi()

	if code, _ := do(t, srv, http.MethodGet, "/api/v1/catalog", ""); code != http.StatusOK {
		t.Fatalf("first request = %d", code)
	}
	code, env := do(t, srv, http.MethodGet, "/api/v1/catalog", "")
	if code != http.StatusTooManyRequests || env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("second request = %d %+v", code, env.Error)
	}
}
