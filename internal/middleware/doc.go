// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware shared by the Marquee router.

  - RequestID: assigns X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, duration and in-flight gauge by chi route pattern
  - AccessLog: per-request log line, warn level above a slow threshold

All middleware uses the func(http.HandlerFunc) http.HandlerFunc shape; the api
package adapts it to chi.
*/
package middleware
