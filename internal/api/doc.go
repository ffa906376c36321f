// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP layer for Marquee using the Chi router.

Key Components:

  - Handler: page handlers for the catalog, search, login, logout and uploads
  - NewRouter: route table and middleware stack
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories

Middleware Stack (outermost first):

 1. RequestID: X-Request-ID plus request/correlation IDs for logging.Ctx
 2. RealIP (only with TrustProxyHeaders) and Recoverer from chi
 3. PrometheusMetrics and AccessLog
 4. Compress for text responses
 5. Session Load on page routes only

Error Handling:

A store failure on GET / renders the error page with 503, because
redirecting to / would loop. A store failure on GET /search logs and
redirects to /. Wrong credentials re-render the login page with 200.
Logout always redirects, even when the session store fails.

Usage Example:

	h := api.NewHandler(st, sessions, admin, renderer, storage)
	srv := &http.Server{
	    Addr:    cfg.Server.Addr(),
	    Handler: api.NewRouter(h, api.NewRouterConfig(cfg)),
	}
*/
package api
