// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"strings"

	"github.com/tomtom215/marquee/internal/models"
)

// NormalizeQuery lower-cases a raw search query. Whitespace is kept, so " "
// searches for a literal space. An absent query normalizes to "", which
// matches every movie.
func NormalizeQuery(raw string) string {
	return strings.ToLower(raw)
}

// Matches reports whether a movie satisfies the search predicate: a
// case-insensitive literal substring match on the title, the actors string,
// or at least one genre.
func Matches(movie *models.Movie, query string) bool {
	q := NormalizeQuery(query)
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(movie.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(movie.Actors), q) {
		return true
	}
	for _, g := range movie.Genre {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}

// Filter returns the movies matching query, preserving input order.
func Filter(movies []models.Movie, query string) []models.Movie {
	out := make([]models.Movie, 0, len(movies))
	for i := range movies {
		if Matches(&movies[i], query) {
			out = append(out, movies[i])
		}
	}
	return out
}
