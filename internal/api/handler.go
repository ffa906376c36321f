// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/store"
	"github.com/tomtom215/marquee/internal/uploads"
	"github.com/tomtom215/marquee/internal/views"
)

// Version is reported by /healthz. Overridden at build time with -ldflags.
var Version = "dev"

// CredentialVerifier checks an admin login attempt.
type CredentialVerifier interface {
	Verify(username, password string) error
}

// Uploader persists an uploaded image from a request.
type Uploader interface {
	Save(w http.ResponseWriter, r *http.Request) (*uploads.Result, error)
}

// breakerStater is implemented by stores wrapped in a circuit breaker.
type breakerStater interface {
	State() string
}

// Handler serves the catalog pages, login flow and uploads.
type Handler struct {
	store     store.Store
	sessions  *auth.SessionMiddleware
	admin     CredentialVerifier
	views     views.Renderer
	uploader  Uploader
	security  *logging.SecurityLogger
	startTime time.Time
}

// NewHandler creates a Handler. uploader may be nil, in which case uploads
// answer 503.
func NewHandler(
	st store.Store,
	sessions *auth.SessionMiddleware,
	admin CredentialVerifier,
	renderer views.Renderer,
	uploader Uploader,
) *Handler {
	return &Handler{
		store:     st,
		sessions:  sessions,
		admin:     admin,
		views:     renderer,
		uploader:  uploader,
		security:  logging.NewSecurityLogger(),
		startTime: time.Now(),
	}
}

// render writes a page, falling back to a bare 500 when the template fails.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.views.Render(w, status, page, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError renders the error page with status.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, views.PageError, views.ErrorData{
		Status:  status,
		Message: message,
		IsAdmin: auth.IsAdmin(r.Context()),
	})
}
