// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// BreakerSettings tunes the store circuit breaker.
type BreakerSettings struct {
	Name         string
	MinRequests  uint32        // requests in the window before the ratio is considered
	FailureRatio float64       // failure ratio that opens the circuit
	Interval     time.Duration // closed-state counter reset period
	Timeout      time.Duration // open-state duration before a half-open probe
	MaxRequests  uint32        // concurrent probes allowed while half-open
}

// DefaultBreakerSettings returns the production breaker configuration:
// open at >= 60% failures over at least 10 requests, probe after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "mongodb",
		MinRequests:  10,
		FailureRatio: 0.6,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MaxRequests:  3,
	}
}

// BreakerStore wraps a Store with a circuit breaker. While the circuit is
// open, reads fail immediately with an error wrapping ErrUnavailable.
//
// The breaker runs on wall-clock time; tests exercise it with small
// MinRequests and a failing inner store rather than by mocking time.
type BreakerStore struct {
	inner Store
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
}

// NewBreakerStore wraps inner with a circuit breaker.
func NewBreakerStore(inner Store, s BreakerSettings) *BreakerStore {
	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        s.Name,
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
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// A client hanging up is not a store failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerStore{inner: inner, cb: cb, name: s.Name}
}

// execute runs fn under the breaker and records the outcome.
func (b *BreakerStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}

		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// castMovies type-asserts a breaker result.
func castMovies(result interface{}, err error) ([]models.Movie, error) {
	if err != nil {
		return nil, err
	}
	movies, ok := result.([]models.Movie)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return movies, nil
}

// All implements Store.
func (b *BreakerStore) All(ctx context.Context) ([]models.Movie, error) {
	return castMovies(b.execute(func() (interface{}, error) {
		return b.inner.All(ctx)
	}))
}

// Search implements Store.
func (b *BreakerStore) Search(ctx context.Context, query string) ([]models.Movie, error) {
	return castMovies(b.execute(func() (interface{}, error) {
		return b.inner.Search(ctx, query)
	}))
}

// Ping implements Store.
func (b *BreakerStore) Ping(ctx context.Context) error {
	_, err := b.execute(func() (interface{}, error) {
		return nil, b.inner.Ping(ctx)
	})
	return err
}

// Close closes the wrapped store without going through the breaker.
func (b *BreakerStore) Close(ctx context.Context) error {
	return b.inner.Close(ctx)
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerStore) State() string {
	return stateToString(b.cb.State())
}

// Count passes through to the wrapped store when it supports seeding.
func (b *BreakerStore) Count(ctx context.Context) (int64, error) {
	seeder, ok := b.inner.(Seeder)
	if !ok {
		return 0, fmt.Errorf("store %T does not support seeding", b.inner)
	}
	return seeder.Count(ctx)
}

// Insert passes through to the wrapped store when it supports seeding.
func (b *BreakerStore) Insert(ctx context.Context, movies []models.Movie) error {
	seeder, ok := b.inner.(Seeder)
	if !ok {
		return fmt.Errorf("store %T does not support seeding", b.inner)
	}
	return seeder.Insert(ctx, movies)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
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

// stateToString converts circuit breaker state to string for logging
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
