// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Movie is one document of the movies collection.
//
// Fields:
//   - ID: MongoDB ObjectID (omitted on insert so the server assigns one)
//   - Title: display title
//   - Genre: one or more genres; stored either as a string or an array of strings
//   - Actors: free-text cast list, a single string
//   - Ratings: individual user ratings; the average is derived, never stored
//   - ImagePath: poster path relative to the static root (e.g. "images/1700000000000.jpg")
type Movie struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Genre     GenreList          `bson:"genre" json:"genre"`
	Actors    string             `bson:"actors" json:"actors"`
	Ratings   []float64          `bson:"ratings" json:"ratings"`
	ImagePath string             `bson:"imagePath,omitempty" json:"image_path,omitempty"`
}

// GenreList is the normalized genre field of a movie.
// Documents may hold a single genre string or an array of genre strings;
// both decode into a list so consumers never branch on the stored shape.
type GenreList []string

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
// A string is wrapped into a one-element list, an array keeps its string
// elements in order, and null decodes to an empty list.
func (g *GenreList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	val := bsoncore.Value{Type: t, Data: data}

	switch t {
	case bsontype.String:
		s, ok := val.StringValueOK()
		if !ok {
			return fmt.Errorf("genre: malformed string value")
		}
		*g = GenreList{s}
		return nil

	case bsontype.Array:
		arr, ok := val.ArrayOK()
		if !ok {
			return fmt.Errorf("genre: malformed array value")
		}
		values, err := arr.Values()
		if err != nil {
			return fmt.Errorf("genre: read array: %w", err)
		}
		list := make(GenreList, 0, len(values))
		for i, v := range values {
			s, ok := v.StringValueOK()
			if !ok {
				return fmt.Errorf("genre: element %d is %s, want string", i, v.Type)
			}
			list = append(list, s)
		}
		*g = list
		return nil

	case bsontype.Null, bsontype.Undefined:
		*g = GenreList{}
		return nil

	default:
		return fmt.Errorf("genre: unsupported BSON type %s", t)
	}
}

// MarshalBSONValue implements bson.ValueMarshaler. Genres are always written
// as an array, including the empty list.
func (g GenreList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	list := []string(g)
	if list == nil {
		list = []string{}
	}
	return bson.MarshalValue(list)
}
