// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package auth provides browser sessions and the admin credential check.

Every request passes through SessionMiddleware.Load, which resolves the
session cookie to a Session (creating an anonymous one when needed) and
places a SessionContext in the request context. Handlers read it with
IsAdmin or GetSessionContext.

Key Components:

  - Session: opaque ID, admin flag and timestamps
  - SessionStore: storage interface with memory and BadgerDB backends
  - SessionStoreFactory: picks the backend from configuration
  - SessionMiddleware: Load, RequireAdmin, Login (with ID rotation) and Destroy
  - AdminAuthenticator: constant-time username compare plus bcrypt password check

Usage Example:

	factory, err := auth.NewSessionStoreFactory(auth.SessionStoreBadger, "/data/sessions")
	if err != nil {
	    return err
	}
	defer factory.Close()

	sessions := auth.NewSessionMiddleware(factory.CreateStore(), auth.DefaultSessionMiddlewareConfig())
	admin, err := auth.NewAdminAuthenticator("admin", "", cfg.Security.AdminPasswordHash)
	if err != nil {
	    return err
	}

	if err := admin.Verify(username, password); err == nil {
	    sessions.Login(r.Context(), w, r)
	}

Thread Safety:

MemorySessionStore guards its map with a sync.RWMutex and hands out copies.
BadgerSessionStore relies on BadgerDB transactions. Both are safe for
concurrent use.
*/
package auth
