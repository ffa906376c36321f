// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package uploads stores poster images posted by the admin.
//
// One file is accepted per request from the "image" form field and written
// to the upload directory as <unix-millis><ext>. A shared Throttle caps the
// upload rate for the whole process.
package uploads
