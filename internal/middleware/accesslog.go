// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
)

// DefaultSlowRequestThreshold is the duration above which requests log at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs one line per request through logging.Ctx, so entries carry
// the request and correlation IDs. Requests slower than threshold log at warn.
func AccessLog(threshold time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if threshold <= 0 {
		threshold = DefaultSlowRequestThreshold
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next(wrapper, r)

			elapsed := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			if elapsed > threshold {
				event = logger.Warn().Bool("slow", true)
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Dur("duration", elapsed).
				Msg("HTTP request")
		}
	}
}
