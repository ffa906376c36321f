// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/uploads"
)

// RouterConfig holds the routing options that are not handler dependencies.
type RouterConfig struct {
	StaticDir            string
	SlowRequestThreshold time.Duration
	Middleware           *ChiMiddlewareConfig

	// UploadThrottle is shared by all upload requests. nil disables throttling.
	UploadThrottle *uploads.Throttle

	// TrustProxyHeaders rewrites RemoteAddr from forwarding headers. Login
	// rate limiting keys on RemoteAddr, so leave it off unless a proxy
	// strips client-supplied values.
	TrustProxyHeaders bool
}

// NewRouterConfig derives the router options from the loaded configuration.
func NewRouterConfig(cfg *config.Config) *RouterConfig {
	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.LoginRateLimit = cfg.Security.LoginRateLimit
	mw.LoginRateWindow = cfg.Security.LoginRateWindow

	return &RouterConfig{
		StaticDir:            cfg.Files.StaticDir,
		SlowRequestThreshold: middleware.DefaultSlowRequestThreshold,
		Middleware:           mw,
		UploadThrottle:       uploads.NewThrottle(uploads.DefaultUploadRate, uploads.DefaultUploadBurst),
		TrustProxyHeaders:    cfg.Security.TrustProxyHeaders,
	}
}

// NewRouter wires routes to h.
//
//	GET  /          catalog grouped by genre, with newly added
//	GET  /search    filtered catalog
//	GET  /login     login form
//	POST /login     credential check (rate limited per IP)
//	GET  /logout    destroy session
//	POST /upload    admin only, throttled
//	GET  /healthz   JSON health
//	GET  /metrics   Prometheus exposition
//	GET  /*         static files
func NewRouter(h *Handler, cfg *RouterConfig) http.Handler {
	chiMw := NewChiMiddleware(cfg.Middleware)

	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	if cfg.TrustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.AccessLog(cfg.SlowRequestThreshold)))
	r.Use(chimiddleware.Compress(5, "text/html", "text/css", "application/javascript", "application/json", "image/svg+xml"))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Pages carry a session; static files and probes do not.
	r.Group(func(r chi.Router) {
		r.Use(h.sessions.Load)

		r.Get("/", h.Index)
		r.Get("/search", h.Search)
		r.Get("/login", h.LoginPage)
		r.With(chiMw.RateLimitLogin()).Post("/login", h.Login)
		r.Get("/logout", h.Logout)

		upload := r.With(h.sessions.RequireAdmin)
		if cfg.UploadThrottle != nil {
			upload = upload.With(cfg.UploadThrottle.Middleware)
		}
		upload.Post("/upload", h.Upload)
	})

	r.Group(func(r chi.Router) {
		r.Use(chiMw.CORS())
		r.Handle("/*", staticHandler(cfg.StaticDir))
	})

	return r
}

// staticHandler serves files from dir without directory listings.
func staticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fs.ServeHTTP(w, r)
	})
}
