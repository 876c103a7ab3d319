// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/kalainayam/internal/insights"
	"github.com/tomtom215/kalainayam/internal/logging"
	"github.com/tomtom215/kalainayam/internal/recommend"
	"github.com/tomtom215/kalainayam/internal/source"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Datasets  DatasetsConfig   `koanf:"datasets"`
	Recommend recommend.Config `koanf:"recommend"`
	Insights  InsightsConfig   `koanf:"insights"`
	Security  SecurityConfig   `koanf:"security"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// SlowRequest marks access log lines above this latency as warnings.
	SlowRequest time.Duration `koanf:"slow_request"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatasetsConfig describes where the sales and review tables come from.
type DatasetsConfig struct {
	Sales   DatasetConfig `koanf:"sales"`
	Reviews DatasetConfig `koanf:"reviews"`
	// ReloadInterval re-reads both datasets periodically; zero disables it.
	ReloadInterval time.Duration `koanf:"reload_interval"`
	Breaker        BreakerConfig `koanf:"breaker"`
}

// DatasetConfig is one dataset source.
type DatasetConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
	// Format is csv, xlsx or duckdb; empty infers it from Path.
	Format     string `koanf:"format"`
	Sheet      string `koanf:"sheet"`
	Query      string `koanf:"query"`
	TimeLayout string `koanf:"time_layout"`
}

// SourceOptions converts the dataset config for source.New.
func (d DatasetConfig) SourceOptions() source.Options {
	return source.Options{
		Path:       d.Path,
		Format:     d.Format,
		Sheet:      d.Sheet,
		Query:      d.Query,
		TimeLayout: d.TimeLayout,
	}
}

// BreakerConfig tunes the circuit breaker around dataset reads.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// Settings converts to source.BreakerSettings.
func (b BreakerConfig) Settings() source.BreakerSettings {
	return source.BreakerSettings{
		MaxRequests:  b.MaxRequests,
		Interval:     b.Interval,
		Timeout:      b.Timeout,
		MinRequests:  b.MinRequests,
		FailureRatio: b.FailureRatio,
	}
}

// InsightsConfig holds insight computation and caching settings.
type InsightsConfig struct {
	WindowDays      int           `koanf:"window_days"`
	TopItems        int           `koanf:"top_items"`
	Recommendations int           `koanf:"recommendations"`
	MinRated        int           `koanf:"min_rated"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
}

// Options converts to insights.Options.
func (i InsightsConfig) Options() insights.Options {
	return insights.Options{
		WindowDays:      i.WindowDays,
		TopItems:        i.TopItems,
		Recommendations: i.Recommendations,
		MinRated:        i.MinRated,
	}
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// LoggingOptions converts to logging.Config.
func (l LoggingConfig) LoggingOptions() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
