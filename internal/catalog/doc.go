// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package catalog holds the catalog operations that run on movies already
loaded from the store.

  - AverageRating and FormatRating derive a movie's displayed rating
  - GroupByGenre buckets movies under lower-cased genre keys, sorted by key
  - NewlyAdded selects the most recently inserted movies
  - NormalizeQuery and Matches define the search predicate; the store
    package translates the same predicate into a MongoDB filter

All functions are pure and safe for concurrent use.
*/
package catalog
