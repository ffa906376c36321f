// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/views"
)

const catalogUnavailableMessage = "The movie catalog is temporarily unavailable. Please try again shortly."

// Index renders every movie grouped by genre, with the last
// catalog.NewlyAddedCount movies in store order as "newly added".
//
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	movies, err := h.store.All(ctx)
	if err != nil {
		// Redirecting to "/" here would loop, so the error page is served instead.
		logging.Ctx(ctx).Error().Err(err).Msg("Error fetching movies")
		h.renderError(w, r, http.StatusServiceUnavailable, catalogUnavailableMessage)
		return
	}

	h.render(w, r, http.StatusOK, views.PageIndex, views.IndexData{
		Movies:     movies,
		NewlyAdded: catalog.NewlyAdded(movies, catalog.NewlyAddedCount),
		Groups:     catalog.GroupByGenre(movies),
		IsAdmin:    auth.IsAdmin(ctx),
	})
}

// Search renders movies matching the query parameter, grouped by genre.
// A store failure redirects to the home page.
//
// GET /search?query=...
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := catalog.NormalizeQuery(r.URL.Query().Get("query"))

	movies, err := h.store.Search(ctx, query)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("query", sanitizeLogValue(query)).Msg("Error searching movies")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, views.PageIndex, views.IndexData{
		Movies:  movies,
		Groups:  catalog.GroupByGenre(movies),
		Query:   query,
		IsAdmin: auth.IsAdmin(ctx),
	})
}
