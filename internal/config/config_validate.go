// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/kalainayam/internal/source"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatasets(); err != nil {
		return err
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if err := c.validateInsights(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	return nil
}

func (c *Config) validateDatasets() error {
	if !c.Datasets.Sales.Enabled && !c.Datasets.Reviews.Enabled {
		return errors.New("at least one of datasets.sales or datasets.reviews must be enabled")
	}
	for name, d := range map[string]DatasetConfig{"sales": c.Datasets.Sales, "reviews": c.Datasets.Reviews} {
		if !d.Enabled {
			continue
		}
		if _, err := source.New(d.SourceOptions()); err != nil {
			return fmt.Errorf("datasets.%s: %w", name, err)
		}
	}
	if c.Datasets.ReloadInterval < 0 {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must not be negative")
	}
	b := c.Datasets.Breaker
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("datasets.breaker.failure_ratio must be in (0, 1], got %v", b.FailureRatio)
	}
	return nil
}

func (c *Config) validateInsights() error {
	if c.Insights.WindowDays < 1 {
		return fmt.Errorf("INSIGHTS_WINDOW_DAYS must be at least 1, got %d", c.Insights.WindowDays)
	}
	if c.Insights.TopItems < 1 {
		return fmt.Errorf("INSIGHTS_TOP_ITEMS must be at least 1, got %d", c.Insights.TopItems)
	}
	if c.Insights.CacheTTL < 0 {
		return fmt.Errorf("INSIGHTS_CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitRequests)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, disabled; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
