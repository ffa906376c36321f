// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"context"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/models"
)

// MemoryStore is an in-process Store that evaluates searches with
// catalog.Matches. It backs handler tests and local development without
// a MongoDB server.
type MemoryStore struct {
	mu     sync.RWMutex
	movies []models.Movie
	err    error
}

// NewMemoryStore returns a store holding a copy of movies in the given order.
func NewMemoryStore(movies ...models.Movie) *MemoryStore {
	s := &MemoryStore{}
	_ = s.Insert(context.Background(), movies)
	return s
}

// SetError makes every subsequent read and Ping fail with err. nil restores normal operation.
func (s *MemoryStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// All implements Store.
func (s *MemoryStore) All(ctx context.Context) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return cloneMovies(s.movies), nil
}

// Search implements Store.
func (s *MemoryStore) Search(ctx context.Context, query string) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return cloneMovies(catalog.Filter(s.movies, query)), nil
}

// Ping implements Store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.check(ctx)
}

// Close implements Store.
func (s *MemoryStore) Close(context.Context) error {
	return nil
}

// Count implements Seeder.
func (s *MemoryStore) Count(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.movies)), nil
}

// Insert implements Seeder. Movies without an ID are assigned one.
func (s *MemoryStore) Insert(_ context.Context, movies []models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range cloneMovies(movies) {
		if m.ID.IsZero() {
			m.ID = primitive.NewObjectID()
		}
		s.movies = append(s.movies, m)
	}
	return nil
}

// check returns the injected error or the context error (must be called with mu held).
func (s *MemoryStore) check(ctx context.Context) error {
	if s.err != nil {
		return s.err
	}
	return ctx.Err()
}

// cloneMovies deep-copies movies so callers cannot mutate store state.
func cloneMovies(movies []models.Movie) []models.Movie {
	out := make([]models.Movie, len(movies))
	for i := range movies {
		out[i] = movies[i]
		out[i].Genre = slices.Clone(movies[i].Genre)
		out[i].Ratings = slices.Clone(movies[i].Ratings)
	}
	return out
}
