// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/models"
)

//go:embed templates
var templateFS embed.FS

// Page names.
const (
	PageIndex = "index"
	PageLogin = "login"
	PageError = "error"
)

// pages are parsed together with the shared layout.
var pages = []string{PageIndex, PageLogin, PageError}

const layoutFile = "layout.html.tmpl"

// IndexData feeds the index page for both the home and search routes.
type IndexData struct {
	Movies     []models.Movie
	NewlyAdded []models.Movie // empty on search results
	Groups     []catalog.GenreGroup
	Query      string
	IsAdmin    bool
}

// LoginData feeds the login page. Error is empty on first render.
type LoginData struct {
	Error   string
	IsAdmin bool
}

// ErrorData feeds the error page.
type ErrorData struct {
	Status  int
	Message string
	IsAdmin bool
}

// Renderer renders a named page with data into an HTTP response.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

// TemplateRenderer is the html/template Renderer. Templates are parsed once.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates, or the *.html.tmpl files in dir when
// dir is non-empty.
func New(dir string) (*TemplateRenderer, error) {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("embedded templates: %w", err)
		}
		fsys = sub
	}
	return NewFromFS(fsys)
}

// NewFromFS parses templates from fsys.
func NewFromFS(fsys fs.FS) (*TemplateRenderer, error) {
	r := &TemplateRenderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(layoutFile).
			Funcs(funcMap()).
			ParseFS(fsys, layoutFile, page+".html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

// Render executes page into a buffer first so a template error never
// produces a half-written 200 response.
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"averageRating": func(m models.Movie) string {
			return catalog.FormatRating(m.Ratings)
		},
		"genres": func(g models.GenreList) string {
			return strings.Join(g, ", ")
		},
		"genreTitle": func(key string) string {
			if key == "" {
				return "Uncategorized"
			}
			r, size := utf8.DecodeRuneInString(key)
			return string(unicode.ToUpper(r)) + key[size:]
		},
		"imageURL": func(p string) string {
			if p == "" {
				return ""
			}
			if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
				return p
			}
			return "/" + p
		},
	}
}
