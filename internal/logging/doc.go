// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package logging provides centralized zerolog-based structured logging for Marquee.

A global logger is configured once at startup from LOG_LEVEL, LOG_FORMAT and
LOG_CALLER and is safe for concurrent use:

	logging.Init(logging.Config{Level: "debug", Format: "console"})
	logging.Info().Str("addr", addr).Msg("HTTP server listening")

Request-scoped logging attaches the request and correlation IDs placed in the
context by the request ID middleware:

	logging.Ctx(r.Context()).Error().Err(err).Msg("Error fetching movies")

SlogHandler bridges the global logger to log/slog for the supervisor tree's
sutureslog event hook. SecurityLogger records admin login and logout events
with masked usernames and session IDs.
*/
package logging
