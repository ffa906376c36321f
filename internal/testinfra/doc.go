// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

/*
Package testinfra provides testcontainers-based infrastructure for integration tests.

Files in this package carry the integration build tag, so they are compiled only with:

	go test -tags integration ./...

Tests call SkipIfNoDocker first so the suite degrades gracefully on machines
without a Docker daemon, then start a throwaway MongoDB with NewMongoContainer.
*/
package testinfra
