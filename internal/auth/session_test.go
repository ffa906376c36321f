// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	session := NewSession(time.Hour)

	if len(session.ID) != 64 {
		t.Errorf("ID length = %d, want 64 hex chars", len(session.ID))
	}
	if session.IsAdmin {
		t.Error("new session should not be admin")
	}
	if session.IsExpired() {
		t.Error("new session should not be expired")
	}
	if got := session.ExpiresAt.Sub(session.CreatedAt); got != time.Hour {
		t.Errorf("lifetime = %v, want 1h", got)
	}

	other := NewSession(time.Hour)
	if other.ID == session.ID {
		t.Error("session IDs should be unique")
	}
}

func TestMemorySessionStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := NewSession(time.Hour)
	session.IsAdmin = true
	if err := store.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	retrieved, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if retrieved.ID != session.ID {
		t.Errorf("ID = %v, want %v", retrieved.ID, session.ID)
	}
	if !retrieved.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}

	// Mutating the returned copy must not leak into the store.
	retrieved.IsAdmin = false
	again, _ := store.Get(ctx, session.ID)
	if !again.IsAdmin {
		t.Error("store was modified through returned session")
	}
}

func TestMemorySessionStore_GetErrors(t *testing.T) {
	t.Parallel()
	store := NewMemorySessionStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(missing) error = %v, want %v", err, ErrSessionNotFound)
	}

	expired := NewSession(time.Hour)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	if err := store.Create(ctx, expired); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Get(ctx, expired.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Get(expired) error = %v, want %v", err, ErrSessionExpired)
	}
}

func TestMemorySessionStore_DeleteTouch(t *testing.T) {
	t.Parallel()
	store := NewMemorySessionStore()
	ctx := context.Background()

	if err := store.Touch(ctx, "missing", time.Now()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Touch(missing) error = %v, want %v", err, ErrSessionNotFound)
	}

	session := NewSession(time.Minute)
	if err := store.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newExpiry := time.Now().Add(2 * time.Hour)
	if err := store.Touch(ctx, session.ID, newExpiry); err != nil {
		t.Fatalf("Touch() error = %v", err)
	}
	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.ExpiresAt.Equal(newExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, newExpiry)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, session.ID); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after delete error = %v, want %v", err, ErrSessionNotFound)
	}
}

func TestMemorySessionStore_CleanupExpired(t *testing.T) {
	t.Parallel()
	store := NewMemorySessionStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s := NewSession(time.Hour)
		if i < 2 {
			s.ExpiresAt = time.Now().Add(-time.Second)
		}
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	removed, err := store.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if n, _ := store.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}
