// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"math"
	"strconv"
)

// AverageRating returns the arithmetic mean of ratings rounded to one decimal
// place, half away from zero. An empty or nil slice yields 0.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return math.Round(sum/float64(len(ratings))*10) / 10
}

// FormatRating renders the average rating for display: "0" when there are
// no ratings, otherwise the mean with exactly one decimal ("4.5", "3.0").
func FormatRating(ratings []float64) string {
	if len(ratings) == 0 {
		return "0"
	}
	return strconv.FormatFloat(AverageRating(ratings), 'f', 1, 64)
}
