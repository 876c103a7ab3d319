// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package config loads the server configuration with koanf.

# Loading Order

 1. Defaults from defaultConfig()
 2. Optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/kalainayam/config.yaml
 3. Environment variables (explicit mapping, see envTransformFunc)

Later layers override earlier ones. The result is validated before it is
returned; a Config is read-only afterwards.

# Example config.yaml

	server:
	  port: 8080
	datasets:
	  reload_interval: 10m
	  sales:
	    path: data/Fashion_Retail_Sales.csv
	    format: csv
	  reviews:
	    path: data/reviews.xlsx
	    format: xlsx
	    sheet: Reviews
	insights:
	  window_days: 28
	  cache_ttl: 5m
	security:
	  cors_origins: ["https://dashboard.example.com"]
	  rate_limit_requests: 120
	  rate_limit_window: 1m

# Environment Variables

	HTTP_HOST, HTTP_PORT
	SALES_DATA_PATH, SALES_DATA_FORMAT, SALES_DATA_SHEET, SALES_DATA_QUERY
	REVIEWS_DATA_PATH, REVIEWS_DATA_FORMAT, REVIEWS_DATA_SHEET, REVIEWS_DATA_QUERY
	DATASET_RELOAD_INTERVAL
	RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K
	INSIGHTS_WINDOW_DAYS, INSIGHTS_TOP_ITEMS, INSIGHTS_CACHE_TTL
	CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
