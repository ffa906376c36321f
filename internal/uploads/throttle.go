// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package uploads

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/metrics"
)

// Default upload throttle: one upload per second sustained, bursts of five.
const (
	DefaultUploadRate  = rate.Limit(1)
	DefaultUploadBurst = 5
)

// Throttle is a process-wide token bucket shared by all upload requests.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle refilling at r tokens per second up to burst.
func NewThrottle(r rate.Limit, burst int) *Throttle {
	return &Throttle{limiter: rate.NewLimiter(r, burst)}
}

// Allow reports whether an upload may proceed now.
func (t *Throttle) Allow() bool {
	return t.limiter.Allow()
}

// Middleware rejects requests with 429 when the bucket is empty.
func (t *Throttle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.limiter.Allow() {
			metrics.RecordUpload("throttled", 0)
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too many uploads, slow down", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
