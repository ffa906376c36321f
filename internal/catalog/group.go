// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"slices"
	"strings"

	"github.com/tomtom215/marquee/internal/models"
)

// NewlyAddedCount is the number of movies shown in the "newly added" strip.
const NewlyAddedCount = 10

// GenreGroup is one bucket of the genre-grouped listing.
type GenreGroup struct {
	Genre  string
	Movies []models.Movie
}

// GroupByGenre buckets movies by lower-cased genre.
//
// Movies keep their input order inside each bucket, and a movie appears once
// per genre entry (a genre listed twice appends the movie twice). Movies with
// no genres are dropped. An empty-string genre is kept as the "" bucket.
// Groups are returned sorted ascending by key.
func GroupByGenre(movies []models.Movie) []GenreGroup {
	buckets := make(map[string][]models.Movie)
	for i := range movies {
		for _, genre := range movies[i].Genre {
			key := strings.ToLower(genre)
			buckets[key] = append(buckets[key], movies[i])
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	groups := make([]GenreGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, GenreGroup{Genre: k, Movies: buckets[k]})
	}
	return groups
}

// NewlyAdded returns the last n movies in store order. Fewer than n movies
// are returned unchanged.
func NewlyAdded(movies []models.Movie, n int) []models.Movie {
	if n <= 0 {
		return nil
	}
	if len(movies) <= n {
		return movies
	}
	return movies[len(movies)-n:]
}
