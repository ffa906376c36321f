// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestGenreList_DecodeShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  bson.M
		want GenreList
	}{
		{"array", bson.M{"title": "A", "genre": bson.A{"Action", "Drama"}}, GenreList{"Action", "Drama"}},
		{"scalar", bson.M{"title": "B", "genre": "Drama"}, GenreList{"Drama"}},
		{"empty string", bson.M{"title": "C", "genre": ""}, GenreList{""}},
		{"empty array", bson.M{"title": "D", "genre": bson.A{}}, GenreList{}},
		{"null", bson.M{"title": "E", "genre": nil}, GenreList{}},
		{"missing", bson.M{"title": "F"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw, err := bson.Marshal(tt.doc)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var m Movie
			if err := bson.Unmarshal(raw, &m); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(m.Genre) != len(tt.want) || (len(tt.want) > 0 && !reflect.DeepEqual(m.Genre, tt.want)) {
				t.Errorf("Genre = %#v, want %#v", m.Genre, tt.want)
			}
		})
	}
}

func TestGenreList_RejectsNonString(t *testing.T) {
	t.Parallel()

	raw, err := bson.Marshal(bson.M{"genre": bson.A{"Action", 7}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m Movie
	if err := bson.Unmarshal(raw, &m); err == nil {
		t.Error("expected error for non-string genre element")
	}

	raw, err = bson.Marshal(bson.M{"genre": 3.5})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := bson.Unmarshal(raw, &m); err == nil {
		t.Error("expected error for numeric genre")
	}
}

func TestMovie_IntegerRatingsDecode(t *testing.T) {
	t.Parallel()

	raw, err := bson.Marshal(bson.M{"title": "A", "ratings": bson.A{int32(4), int32(5)}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m Movie
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(m.Ratings, []float64{4, 5}) {
		t.Errorf("Ratings = %v, want [4 5]", m.Ratings)
	}
}

func TestGenreList_EncodesNilAsEmptyArray(t *testing.T) {
	t.Parallel()

	raw, err := bson.Marshal(Movie{Title: "A"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	val := bson.Raw(raw).Lookup("genre")
	if val.Type != bson.TypeArray {
		t.Fatalf("genre stored as %s, want array", val.Type)
	}
	if _, err := bson.Raw(raw).LookupErr("_id"); err == nil {
		t.Error("zero ObjectID should be omitted")
	}
}
