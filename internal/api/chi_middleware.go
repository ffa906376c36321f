// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration. No origins disables CORS handling entirely.
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	// Login throttling per client IP. Zero requests disables it.
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// DefaultChiMiddlewareConfig returns a secure default configuration.
// CORS origins default to empty, requiring explicit configuration.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		CORSAllowedHeaders: []string{"Accept", "Content-Type"},
		CORSMaxAge:         86400,

		LoginRateLimit:  10,
		LoginRateWindow: time.Minute,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	m := &ChiMiddleware{config: config}
	if len(config.CORSAllowedOrigins) > 0 {
		m.cors = cors.Handler(cors.Options{
			AllowedOrigins: config.CORSAllowedOrigins,
			AllowedMethods: config.CORSAllowedMethods,
			AllowedHeaders: config.CORSAllowedHeaders,
			MaxAge:         config.CORSMaxAge,
		})
	}
	return m
}

func passthrough(next http.Handler) http.Handler {
	return next
}

// CORS returns the go-chi/cors handler, or a no-op when no origins are configured.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	if m.cors == nil {
		return passthrough
	}
	return m.cors
}

// RateLimitLogin limits login submissions per client IP with go-chi/httprate.
// Rejected attempts count as throttled logins.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	if m.config.LoginRateLimit <= 0 {
		return passthrough
	}

	return httprate.Limit(
		m.config.LoginRateLimit,
		m.config.LoginRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordLoginAttempt("throttled")
			logging.Ctx(r.Context()).Warn().
				Str("ip", r.RemoteAddr).
				Msg("Login rate limit exceeded")
			http.Error(w, "Too many login attempts, try again later", http.StatusTooManyRequests)
		}),
	)
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}
