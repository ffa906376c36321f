// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package store is Marquee's document store client.

MongoStore reads the movies collection with the official MongoDB driver and
records operation latency and errors in Prometheus. BreakerStore wraps any
Store with a sony/gobreaker circuit breaker so a failing database turns into
fast ErrUnavailable errors instead of piling up slow requests. MemoryStore
implements the same interface in process for tests and local development.

Search semantics are shared with the catalog package: SearchFilter is the
MongoDB translation of catalog.Matches.

Usage:

	mongoStore, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	movies := store.NewBreakerStore(mongoStore, store.DefaultBreakerSettings())
*/
package store
