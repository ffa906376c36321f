// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/uploads"
)

// Upload stores one image from the "image" form field and redirects home.
// The route is admin-only and throttled; see NewRouter.
//
// POST /upload
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.uploader == nil {
		h.renderError(w, r, http.StatusServiceUnavailable, "Uploads are disabled.")
		return
	}

	res, err := h.uploader.Save(w, r)
	switch {
	case errors.Is(err, uploads.ErrNoFile):
		metrics.RecordUpload("rejected", 0)
		h.renderError(w, r, http.StatusBadRequest, "Choose an image to upload.")
		return
	case errors.Is(err, uploads.ErrTooLarge):
		metrics.RecordUpload("rejected", 0)
		h.renderError(w, r, http.StatusBadRequest, "The image is too large.")
		return
	case err != nil:
		metrics.RecordUpload("error", 0)
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to store upload")
		h.renderError(w, r, http.StatusInternalServerError, "The image could not be saved.")
		return
	}

	metrics.RecordUpload("success", res.Size)
	logging.Ctx(ctx).Info().
		Str("file", res.Name).
		Int64("bytes", res.Size).
		Msg("Image uploaded")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
