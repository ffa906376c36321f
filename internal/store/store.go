// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"context"
	"errors"

	"github.com/tomtom215/marquee/internal/models"
)

// ErrUnavailable is returned when the store is failing fast because its
// circuit breaker is open.
var ErrUnavailable = errors.New("store unavailable")

// Store is the read side of the movie catalog.
type Store interface {
	// All returns every movie in natural store order.
	All(ctx context.Context) ([]models.Movie, error)

	// Search returns movies whose title, actors or any genre contains query,
	// case-insensitively, in natural store order. An empty query returns all movies.
	Search(ctx context.Context, query string) ([]models.Movie, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close(ctx context.Context) error
}

// Seeder is implemented by stores that accept bulk inserts for sample data.
type Seeder interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, movies []models.Movie) error
}
