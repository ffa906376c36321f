// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/marquee/internal/catalog"
)

// SearchFilter builds the MongoDB filter for a raw search query.
//
// The query is normalized with catalog.NormalizeQuery and quoted, so it is
// always a literal substring. The filter ORs a case-insensitive regex on
// title, on actors, on an element of an array genre, and on a scalar genre.
// An empty query yields an empty filter, which matches every document.
func SearchFilter(query string) bson.M {
	q := catalog.NormalizeQuery(query)
	if q == "" {
		return bson.M{}
	}

	pattern := regexp.QuoteMeta(q)
	return bson.M{
		"$or": bson.A{
			bson.M{"title": caseInsensitive(pattern)},
			bson.M{"actors": caseInsensitive(pattern)},
			bson.M{"genre": bson.M{"$elemMatch": caseInsensitive(pattern)}},
			bson.M{"genre": caseInsensitive(pattern)},
		},
	}
}

func caseInsensitive(pattern string) bson.M {
	return bson.M{"$regex": pattern, "$options": "i"}
}
