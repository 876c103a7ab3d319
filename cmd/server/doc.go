// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package main is the kalainayam server: fashion retail trend analytics and
collection suggestions over a sales table and a product review table.

# Startup

The server initializes components in this order:

 1. Configuration: defaults, config.yaml, then environment variables (koanf v2)
 2. Logging: zerolog with the configured level and format
 3. Catalog: the built-in palettes, focus classes and materials are validated
 4. Datasets: one source reader per enabled dataset (CSV, XLSX or DuckDB),
    each behind a circuit breaker, loaded once into the first snapshot
 5. Suggestion engine and the insights cache
 6. HTTP: chi router with CORS, rate limiting, request IDs and metrics
 7. Supervisor tree: HTTP server, periodic reload, cache cleanup

A dataset that fails to load at startup is logged and left empty; the review
dataset being absent only means every suggestion is a fallback design. The
server refuses to start when neither dataset is enabled.

# Configuration

Common environment variables:

	HTTP_PORT=8080
	SALES_DATA_PATH=data/Fashion_Retail_Sales.csv
	REVIEWS_DATA_PATH="data/Womens Clothing E-Commerce Reviews.csv"
	REVIEWS_DATA_FORMAT=xlsx            # csv, xlsx or duckdb
	DATASET_RELOAD_INTERVAL=1h
	RECOMMEND_MAX_K=12
	LOG_LEVEL=debug
	LOG_FORMAT=console

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT before exit.

# Example

	./kalainayam
	curl -s localhost:8080/api/v1/trends?days=28
	curl -s -XPOST localhost:8080/api/v1/suggestions \
	  -d '{"season":"autumn","audience":"women","focus":"tailoring","top_k":4}'
*/
package main
