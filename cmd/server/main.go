// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/kalainayam/internal/api"
	"github.com/tomtom215/kalainayam/internal/cache"
	"github.com/tomtom215/kalainayam/internal/catalog"
	"github.com/tomtom215/kalainayam/internal/config"
	"github.com/tomtom215/kalainayam/internal/dataset"
	"github.com/tomtom215/kalainayam/internal/logging"
	"github.com/tomtom215/kalainayam/internal/recommend"
	"github.com/tomtom215/kalainayam/internal/records"
	"github.com/tomtom215/kalainayam/internal/source"
	"github.com/tomtom215/kalainayam/internal/supervisor"
	"github.com/tomtom215/kalainayam/internal/supervisor/services"
)

// startupLoadTimeout bounds the initial dataset load.
const startupLoadTimeout = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.LoggingOptions())
	logging.Info().Msg("Starting Kalainayam with supervisor tree")

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("Built-in catalog is invalid")
	}

	sales, err := datasetSource(dataset.Sales, cfg.Datasets.Sales, records.SalesSchema(), cfg.Datasets.Breaker)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid sales dataset configuration")
	}
	reviews, err := datasetSource(dataset.Reviews, cfg.Datasets.Reviews, records.ReviewSchema(), cfg.Datasets.Breaker)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid reviews dataset configuration")
	}
	if sales.Loader == nil && reviews.Loader == nil {
		logging.Fatal().Msg("No dataset enabled; enable sales or reviews")
	}

	registry := dataset.NewRegistry(sales, reviews, logging.Logger())

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), startupLoadTimeout)
	snap, err := registry.Reload(loadCtx)
	cancelLoad()
	switch {
	case snap == nil:
		logging.Warn().Err(err).Msg("Initial dataset load failed; serving without data until a reload succeeds")
	case err != nil:
		logging.Warn().Err(err).Uint64("version", snap.Version).Msg("Initial dataset load partially failed")
	default:
		logging.Info().Uint64("version", snap.Version).Msg("Datasets loaded")
	}

	engine, err := recommend.NewEngine(&cfg.Recommend, cat, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create suggestion engine")
	}

	insightsCache := cache.New[any](cfg.Insights.CacheTTL)
	handler := api.NewHandler(registry, engine, insightsCache, cfg.Insights.Options())

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitRequests
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled
	router := api.NewRouter(handler, api.NewChiMiddleware(mwConfig), cfg.Server.SlowRequest)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(insightsCache)
	if cfg.Datasets.ReloadInterval > 0 {
		tree.AddDataService(services.NewReloadService(registry, cfg.Datasets.ReloadInterval, logging.Logger()))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// datasetSource builds the registry source for one dataset. A disabled
// dataset gets a nil Loader.
func datasetSource(name string, dc config.DatasetConfig, schema records.Schema, bc config.BreakerConfig) (dataset.Source, error) {
	src := dataset.Source{Name: name, Schema: schema}
	if !dc.Enabled {
		logging.Info().Str("dataset", name).Msg("Dataset disabled")
		return src, nil
	}

	opts := dc.SourceOptions()
	reader, err := source.New(opts)
	if err != nil {
		return src, err
	}
	src.Format = source.ResolveFormat(opts)
	src.Loader = source.NewLoader(name, reader, bc.Settings())

	logging.Info().
		Str("dataset", name).
		Str("path", dc.Path).
		Str("format", src.Format).
		Msg("Dataset source configured")
	return src, nil
}
