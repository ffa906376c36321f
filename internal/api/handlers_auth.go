// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/validation"
	"github.com/tomtom215/marquee/internal/views"
)

// InvalidCredentialsMessage is shown on the login page after a failed attempt.
const InvalidCredentialsMessage = "Invalid credentials. Please try again."

// LoginForm is the urlencoded body of POST /login.
type LoginForm struct {
	Username string `validate:"required,max=128"`
	Password string `validate:"required,max=256"`
}

// LoginPage renders the login form.
//
// GET /login
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageLogin, views.LoginData{
		IsAdmin: auth.IsAdmin(r.Context()),
	})
}

// Login checks the submitted credential. On success the session is rotated,
// marked admin and the client is sent to the home page with 303. On failure
// the login page is shown again with status 200.
//
// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to parse login form")
	}
	form := LoginForm{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	if verr := validation.ValidateStruct(&form); verr != nil {
		metrics.RecordLoginAttempt("invalid")
		h.security.LogLoginFailure(form.Username, r.RemoteAddr, loginFormFailureReason(verr))
		h.loginFailed(w, r)
		return
	}

	if err := h.admin.Verify(form.Username, form.Password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logging.Ctx(ctx).Error().Err(err).Msg("Credential check failed")
		}
		metrics.RecordLoginAttempt("failure")
		h.security.LogLoginFailure(form.Username, r.RemoteAddr, "invalid_credentials")
		h.loginFailed(w, r)
		return
	}

	session, err := h.sessions.Login(ctx, w, r)
	if err != nil {
		metrics.RecordLoginAttempt("error")
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to create admin session")
		h.renderError(w, r, http.StatusInternalServerError, "Could not start an admin session. Please try again.")
		return
	}

	metrics.RecordLoginAttempt("success")
	h.security.LogLoginSuccess(form.Username, session.ID, r.RemoteAddr)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loginFormFailureReason names the first offending login field for the
// security log without echoing the submitted values.
func loginFormFailureReason(verr *validation.RequestValidationError) string {
	switch {
	case verr.HasField("Username"):
		return "invalid_username"
	case verr.HasField("Password"):
		return "invalid_password"
	default:
		return "invalid_form"
	}
}

func (h *Handler) loginFailed(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageLogin, views.LoginData{
		Error:   InvalidCredentialsMessage,
		IsAdmin: auth.IsAdmin(r.Context()),
	})
}

// Logout destroys the session and clears the cookie. A store error is logged
// and the redirect happens regardless.
//
// GET /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var sessionID string
	if sc := auth.GetSessionContext(r.Context()); sc != nil {
		sessionID = sc.SessionID
	}

	err := h.sessions.Destroy(r.Context(), w, r)
	h.security.LogLogout(sessionID, r.RemoteAddr, err)

	http.Redirect(w, r, "/", http.StatusFound)
}
