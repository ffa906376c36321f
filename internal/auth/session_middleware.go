// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionContext is what handlers and views learn about the current session.
type SessionContext struct {
	SessionID string
	IsAdmin   bool
}

// SessionMiddlewareConfig holds configuration for the session middleware.
type SessionMiddlewareConfig struct {
	// CookieName is the name of the session cookie.
	CookieName string

	// SessionTTL is the session time-to-live.
	SessionTTL time.Duration

	// SlidingSession extends the expiry on each request.
	SlidingSession bool

	CookiePath     string
	CookieSecure   bool
	CookieHTTPOnly bool
	CookieSameSite http.SameSite
}

// DefaultSessionMiddlewareConfig returns sensible defaults.
func DefaultSessionMiddlewareConfig() *SessionMiddlewareConfig {
	return &SessionMiddlewareConfig{
		CookieName:     "marquee_session",
		SessionTTL:     24 * time.Hour,
		SlidingSession: true,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// SessionMiddleware attaches a session to every request and manages the
// admin login lifecycle.
type SessionMiddleware struct {
	store  SessionStore
	config *SessionMiddlewareConfig
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(store SessionStore, config *SessionMiddlewareConfig) *SessionMiddleware {
	if config == nil {
		config = DefaultSessionMiddlewareConfig()
	}
	return &SessionMiddleware{
		store:  store,
		config: config,
	}
}

// Load resolves the session cookie to a session, creating and persisting a
// fresh anonymous session when the cookie is missing, unknown or expired.
// Store failures degrade to an anonymous, unpersisted session.
func (m *SessionMiddleware) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := m.lookup(ctx, w, r)

		if session == nil {
			session = NewSession(m.config.SessionTTL)
			err := m.store.Create(ctx, session)
			metrics.RecordSessionOperation("create", err)
			if err != nil {
				logging.Ctx(ctx).Error().Err(err).Msg("Failed to create session")
			} else {
				m.SetSessionCookie(w, session.ID)
			}
		}

		sc := &SessionContext{SessionID: session.ID, IsAdmin: session.IsAdmin}
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionContextKey, sc)))
	})
}

// lookup returns the stored session named by the request cookie, or nil.
// With sliding sessions the stored expiry and the cookie lifetime are both
// renewed.
func (m *SessionMiddleware) lookup(ctx context.Context, w http.ResponseWriter, r *http.Request) *Session {
	sessionID := m.sessionID(r)
	if sessionID == "" {
		return nil
	}

	session, err := m.store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
			metrics.RecordSessionOperation("get", err)
			logging.Ctx(ctx).Error().Err(err).Msg("Session lookup error")
		}
		return nil
	}
	metrics.RecordSessionOperation("get", nil)

	if m.config.SlidingSession {
		newExpiry := time.Now().Add(m.config.SessionTTL)
		if err := m.store.Touch(ctx, sessionID, newExpiry); err != nil {
			metrics.RecordSessionOperation("touch", err)
			logging.Ctx(ctx).Error().Err(err).Msg("Failed to touch session")
		} else {
			session.ExpiresAt = newExpiry
			m.SetSessionCookie(w, sessionID)
		}
	}
	return session
}

// RequireAdmin rejects requests whose session is not an admin session with 403.
// It must run after Load.
func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			http.Error(w, "Forbidden: admin session required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Login replaces the current session with a new admin session and sets the
// cookie. The old session ID is discarded to prevent session fixation.
func (m *SessionMiddleware) Login(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	if oldID := m.sessionID(r); oldID != "" {
		//nolint:errcheck // best-effort removal of the pre-login session
		m.store.Delete(ctx, oldID)
	}

	session := NewSession(m.config.SessionTTL)
	session.IsAdmin = true

	err := m.store.Create(ctx, session)
	metrics.RecordSessionOperation("login", err)
	if err != nil {
		return nil, err
	}

	m.SetSessionCookie(w, session.ID)
	return session, nil
}

// Destroy deletes the request's session and clears the cookie. The cookie is
// cleared even when the store delete fails.
func (m *SessionMiddleware) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	m.ClearSessionCookie(w)

	sessionID := m.sessionID(r)
	if sessionID == "" {
		return nil
	}

	err := m.store.Delete(ctx, sessionID)
	metrics.RecordSessionOperation("delete", err)
	return err
}

// sessionID prefers the ID resolved by Load over the raw cookie.
func (m *SessionMiddleware) sessionID(r *http.Request) string {
	if sc := GetSessionContext(r.Context()); sc != nil && sc.SessionID != "" {
		return sc.SessionID
	}
	cookie, err := r.Cookie(m.config.CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// SetSessionCookie sets the session cookie on the response.
func (m *SessionMiddleware) SetSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    sessionID,
		Path:     m.config.CookiePath,
		MaxAge:   int(m.config.SessionTTL.Seconds()),
		Secure:   m.config.CookieSecure,
		HttpOnly: m.config.CookieHTTPOnly,
		SameSite: m.config.CookieSameSite,
	})
}

// ClearSessionCookie clears the session cookie.
func (m *SessionMiddleware) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     m.config.CookiePath,
		MaxAge:   -1,
		Secure:   m.config.CookieSecure,
		HttpOnly: m.config.CookieHTTPOnly,
		SameSite: m.config.CookieSameSite,
	})
}

// GetSessionContext returns the session context placed by Load, or nil.
func GetSessionContext(ctx context.Context) *SessionContext {
	sc, _ := ctx.Value(sessionContextKey).(*SessionContext)
	return sc
}

// IsAdmin reports whether the request's session is an admin session.
func IsAdmin(ctx context.Context) bool {
	sc := GetSessionContext(ctx)
	return sc != nil && sc.IsAdmin
}

// WithSessionContext returns a context carrying sc. Intended for tests and
// handlers invoked outside Load.
func WithSessionContext(ctx context.Context, sc *SessionContext) context.Context {
	return context.WithValue(ctx, sessionContextKey, sc)
}
