// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

var (
	_ suture.Service = (*SessionCleanupService)(nil)
	_ SessionSweeper = (auth.SessionStore)(nil)
)

// countingSweeper records calls and can fail every sweep.
type countingSweeper struct {
	cleanups atomic.Int32
	err      error
	active   int
}

func (c *countingSweeper) CleanupExpired(context.Context) (int, error) {
	c.cleanups.Add(1)
	if c.err != nil {
		return 0, c.err
	}
	return 1, nil
}

func (c *countingSweeper) Count(context.Context) (int, error) {
	return c.active, nil
}

func TestNewSessionCleanupService_DefaultInterval(t *testing.T) {
	svc := NewSessionCleanupService(&countingSweeper{}, 0)
	if svc.interval != DefaultSessionCleanupInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultSessionCleanupInterval)
	}
	if svc.String() != "session-cleanup" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestSessionCleanupService_RemovesExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemorySessionStore()

	live := auth.NewSession(time.Hour)
	expired := auth.NewSession(time.Hour)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	for _, s := range []*auth.Session{live, expired} {
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	NewSessionCleanupService(store, time.Hour).sweep(ctx)

	if n, _ := store.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
	if got := testutil.ToFloat64(metrics.ActiveSessions); got != 1 {
		t.Errorf("ActiveSessions = %v, want 1", got)
	}
	if _, err := store.Get(ctx, live.ID); err != nil {
		t.Errorf("live session lost: %v", err)
	}
}

func TestSessionCleanupService_KeepsRunningOnError(t *testing.T) {
	sweeper := &countingSweeper{err: errors.New("store unavailable")}
	svc := NewSessionCleanupService(sweeper, 5*time.Millisecond)

	before := testutil.ToFloat64(metrics.SessionOperations.WithLabelValues("cleanup", "error"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want deadline exceeded", err)
	}
	if got := sweeper.cleanups.Load(); got < 2 {
		t.Errorf("cleanups = %d, want at least 2", got)
	}
	if got := testutil.ToFloat64(metrics.SessionOperations.WithLabelValues("cleanup", "error")); got < before+2 {
		t.Errorf("cleanup error metric = %v, want >= %v", got, before+2)
	}
}

func TestSessionCleanupService_LogsWithComponent(t *testing.T) {
	var buf bytes.Buffer
	previous := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(previous) })

	svc := NewSessionCleanupService(&countingSweeper{err: errors.New("store unavailable")}, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	out := buf.String()
	if !strings.Contains(out, `"component":"session-cleanup"`) {
		t.Errorf("log output missing component field: %s", out)
	}
	if !strings.Contains(out, "Session cleanup failed") {
		t.Errorf("log output missing failure message: %s", out)
	}
}
