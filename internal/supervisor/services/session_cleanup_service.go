// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// DefaultSessionCleanupInterval is how often expired sessions are swept.
const DefaultSessionCleanupInterval = 10 * time.Minute

// SessionSweeper is the part of auth.SessionStore the cleanup loop needs.
type SessionSweeper interface {
	CleanupExpired(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

// SessionCleanupService evicts expired sessions on a fixed interval and
// publishes the remaining count to metrics.ActiveSessions.
//
// Sweep errors are logged and the loop continues; the store is retried on
// the next tick.
type SessionCleanupService struct {
	store    SessionSweeper
	interval time.Duration
	name     string
	logger   zerolog.Logger
}

// NewSessionCleanupService creates the cleanup loop. A non-positive
// interval selects DefaultSessionCleanupInterval.
func NewSessionCleanupService(store SessionSweeper, interval time.Duration) *SessionCleanupService {
	if interval <= 0 {
		interval = DefaultSessionCleanupInterval
	}
	return &SessionCleanupService{
		store:    store,
		interval: interval,
		name:     "session-cleanup",
		logger:   logging.WithComponent("session-cleanup"),
	}
}

// Serve sweeps once immediately and then on every tick until ctx is done.
func (s *SessionCleanupService) Serve(ctx context.Context) error {
	ctx = logging.ContextWithLogger(ctx, s.logger)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs a single cleanup pass.
func (s *SessionCleanupService) sweep(ctx context.Context) {
	logger := logging.Ctx(ctx)

	removed, err := s.store.CleanupExpired(ctx)
	metrics.RecordSessionOperation("cleanup", err)
	if err != nil {
		logger.Warn().Err(err).Msg("Session cleanup failed")
		return
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Session count failed")
		return
	}
	metrics.ActiveSessions.Set(float64(count))

	if removed > 0 {
		logger.Debug().Int("removed", removed).Int("active", count).Msg("Expired sessions removed")
	}
}

// String names the service in supervisor logs.
func (s *SessionCleanupService) String() string {
	return s.name
}
