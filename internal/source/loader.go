// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package source

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/kalainayam/internal/logging"
	"github.com/tomtom215/kalainayam/internal/metrics"
	"github.com/tomtom215/kalainayam/internal/records"
)

// BreakerSettings tunes the Loader's circuit breaker.
type BreakerSettings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerSettings opens the circuit after 60% failures over at least
// 10 reads and retries after two minutes.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// Loader reads a dataset through a circuit breaker.
//
// The breaker uses wall-clock time for its interval and timeout; tests
// exercise it by failure counts only.
type Loader struct {
	name   string
	reader Reader
	cb     *gobreaker.CircuitBreaker[records.Table]
}

// NewLoader wraps reader. name labels logs and circuit breaker metrics.
func NewLoader(name string, reader Reader, s BreakerSettings) *Loader {
	cbName := "dataset-" + name

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[records.Table](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().Str("breaker", cbName).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).Msg("Opening dataset circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Dataset circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &Loader{name: name, reader: reader, cb: cb}
}

// Name returns the dataset name.
func (l *Loader) Name() string { return l.name }

// State reports the breaker state ("closed", "half-open" or "open").
func (l *Loader) State() string { return stateToString(l.cb.State()) }

// Load reads the table. When the circuit is open the reader is not called
// and the returned error wraps gobreaker.ErrOpenState.
func (l *Loader) Load(ctx context.Context) (records.Table, error) {
	cbName := "dataset-" + l.name
	table, err := l.cb.Execute(func() (records.Table, error) {
		return l.reader.Read(ctx)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
			logging.Warn().Err(err).Str("dataset", l.name).Msg("Dataset read rejected by circuit breaker")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbName, "failure").Inc()
			counts := l.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(float64(counts.ConsecutiveFailures))
		}
		return records.Table{}, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)
	return table, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
