// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package models defines the data structures shared between the store, the
// catalog operations and the HTTP layer: the Movie document with its BSON
// mapping and the health check response.
package models
