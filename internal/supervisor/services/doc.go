// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service wrappers for Marquee components.

Each wrapper implements suture.Service and fmt.Stringer:

  - HTTPServerService: runs *http.Server and shuts it down gracefully
  - SessionCleanupService: periodically evicts expired sessions and
    publishes the live session count
*/
package services
