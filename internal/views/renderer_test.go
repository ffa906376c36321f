// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/models"
)

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	r, err := New("")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestRender_Index(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	movies := []models.Movie{
		{Title: "Heat", Genre: models.GenreList{"Crime", "Drama"}, Actors: "Al Pacino", Ratings: []float64{4, 5}},
		{Title: "Up", Genre: models.GenreList{"Animation"}, ImagePath: "images/up.png"},
	}
	data := IndexData{
		Movies:     movies,
		NewlyAdded: movies,
		Groups:     catalog.GroupByGenre(movies),
	}

	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, PageIndex, data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Heat", "Rating: 4.5", "Rating: 0", "Newly added",
		"Crime", "Drama", "Animation", `src="/images/up.png"`, "Admin login",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, `action="/upload"`) {
		t.Error("upload form rendered for non-admin")
	}
}

func TestRender_IndexAdminAndSearch(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	w := httptest.NewRecorder()
	err := r.Render(w, http.StatusOK, PageIndex, IndexData{Query: "<script>", IsAdmin: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	if !strings.Contains(body, `action="/upload"`) {
		t.Error("admin should see the upload form")
	}
	if !strings.Contains(body, "Logout") {
		t.Error("admin should see logout link")
	}
	if strings.Contains(body, "Newly added") {
		t.Error("search results must not show newly added")
	}
	if strings.Contains(body, "<script>") {
		t.Error("query was not escaped")
	}
	if !strings.Contains(body, "No movies found.") {
		t.Error("expected empty-state message")
	}
}

func TestRender_Login(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, PageLogin, LoginData{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(w.Body.String(), `class="error"`) {
		t.Error("no error expected on first render")
	}

	w = httptest.NewRecorder()
	msg := "Invalid credentials. Please try again."
	if err := r.Render(w, http.StatusOK, PageLogin, LoginData{Error: msg}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(w.Body.String(), msg) {
		t.Errorf("body missing %q", msg)
	}
}

func TestRender_ErrorStatus(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	w := httptest.NewRecorder()
	data := ErrorData{Status: http.StatusServiceUnavailable, Message: "Movie catalog unavailable"}
	if err := r.Render(w, http.StatusServiceUnavailable, PageError, data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Movie catalog unavailable") {
		t.Error("body missing message")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, "missing", nil); err == nil {
		t.Error("expected error for unknown page")
	}
	if w.Body.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}

func TestNewFromFS_Override(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"layout.html.tmpl": {Data: []byte(`{{define "layout"}}[{{block "content" .}}{{end}}]{{end}}`)},
		"index.html.tmpl":  {Data: []byte(`{{define "content"}}custom index{{end}}`)},
		"login.html.tmpl":  {Data: []byte(`{{define "content"}}custom login{{end}}`)},
		"error.html.tmpl":  {Data: []byte(`{{define "content"}}custom error{{end}}`)},
	}
	r, err := NewFromFS(fsys)
	if err != nil {
		t.Fatalf("NewFromFS() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, PageLogin, LoginData{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := w.Body.String(); got != "[custom login]" {
		t.Errorf("body = %q, want %q", got, "[custom login]")
	}

	if _, err := NewFromFS(fstest.MapFS{}); err == nil {
		t.Error("expected error for empty template dir")
	}
}

func TestFuncMap(t *testing.T) {
	t.Parallel()
	fm := funcMap()

	genreTitle := fm["genreTitle"].(func(string) string)
	if got := genreTitle("sci-fi"); got != "Sci-fi" {
		t.Errorf("genreTitle(sci-fi) = %q", got)
	}
	if got := genreTitle(""); got != "Uncategorized" {
		t.Errorf("genreTitle(\"\") = %q", got)
	}
	if got := genreTitle("élan"); got != "Élan" {
		t.Errorf("genreTitle(élan) = %q", got)
	}

	imageURL := fm["imageURL"].(func(string) string)
	tests := map[string]string{
		"":                      "",
		"images/a.png":          "/images/a.png",
		"/images/a.png":         "/images/a.png",
		"https://cdn.example/a": "https://cdn.example/a",
	}
	for in, want := range tests {
		if got := imageURL(in); got != want {
			t.Errorf("imageURL(%q) = %q, want %q", in, got, want)
		}
	}
}
