// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package views renders the server-side HTML pages.

Three pages are embedded in the binary: index (home and search results),
login and error. Each page defines "title" and "content" blocks that fill
the shared layout. Setting TEMPLATE_DIR parses the same file names from disk
instead, which is handy while editing markup.

Template functions:

  - averageRating: one-decimal mean of a movie's ratings, "0" when unrated
  - genres: comma-joined genre list
  - genreTitle: display label for a lower-cased genre key
  - imageURL: root-relative URL for a stored image path
*/
package views
