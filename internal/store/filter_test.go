// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/marquee/internal/models"
)

func TestSearchFilter_Empty(t *testing.T) {
	t.Parallel()

	if f := SearchFilter(""); len(f) != 0 {
		t.Errorf("SearchFilter(\"\") = %v, want empty filter", f)
	}
}

func TestSearchFilter_WhitespaceIsLiteral(t *testing.T) {
	t.Parallel()

	f := SearchFilter(" ")
	or, ok := f["$or"].(bson.A)
	if !ok || len(or) != 4 {
		t.Fatalf("SearchFilter(\" \") = %v, want a 4-clause $or", f)
	}
	title := or[0].(bson.M)["title"].(bson.M)
	if title["$regex"] != " " {
		t.Errorf("title $regex = %q, want a single space", title["$regex"])
	}

	st := NewMemoryStore(
		models.Movie{Title: "Heat", Genre: models.GenreList{"Crime"}, Actors: "Pacino"},
		models.Movie{Title: "Toy Story", Genre: models.GenreList{"Animation"}, Actors: "Hanks"},
		models.Movie{Title: "Alien", Genre: models.GenreList{"Horror"}, Actors: "Weaver"},
	)
	got, err := st.Search(context.Background(), " ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Toy Story" {
		t.Errorf("Search(\" \") = %v, want only Toy Story", got)
	}
}

func TestSearchFilter_Clauses(t *testing.T) {
	t.Parallel()

	f := SearchFilter("Sci-Fi (1979)")
	or, ok := f["$or"].(bson.A)
	if !ok {
		t.Fatalf("$or missing or wrong type: %#v", f)
	}
	if len(or) != 4 {
		t.Fatalf("len($or) = %d, want 4", len(or))
	}

	wantPattern := `sci-fi \(1979\)`
	check := func(clause interface{}, field string, elemMatch bool) {
		t.Helper()
		m, ok := clause.(bson.M)
		if !ok {
			t.Fatalf("clause is %T, want bson.M", clause)
		}
		cond, ok := m[field].(bson.M)
		if !ok {
			t.Fatalf("clause %v missing field %s", m, field)
		}
		if elemMatch {
			if cond, ok = cond["$elemMatch"].(bson.M); !ok {
				t.Fatalf("genre clause missing $elemMatch: %v", m)
			}
		}
		if cond["$regex"] != wantPattern {
			t.Errorf("%s $regex = %v, want %q", field, cond["$regex"], wantPattern)
		}
		if cond["$options"] != "i" {
			t.Errorf("%s $options = %v, want i", field, cond["$options"])
		}
	}

	check(or[0], "title", false)
	check(or[1], "actors", false)
	check(or[2], "genre", true)
	check(or[3], "genre", false)
}

func TestSearchFilter_MarshalsToBSON(t *testing.T) {
	t.Parallel()

	if _, err := bson.Marshal(SearchFilter("heat")); err != nil {
		t.Fatalf("filter should marshal: %v", err)
	}
}
