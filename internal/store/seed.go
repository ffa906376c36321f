// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// SampleMovies returns the demo catalog inserted by SeedMockData. Genres mix
// the scalar and list shapes found in real collections.
func SampleMovies() []models.Movie {
	return []models.Movie{
		{Title: "Heat", Genre: models.GenreList{"Crime", "Thriller"}, Actors: "Al Pacino, Robert De Niro, Val Kilmer", Ratings: []float64{5, 4, 5}},
		{Title: "Alien", Genre: models.GenreList{"Horror", "Sci-Fi"}, Actors: "Sigourney Weaver, Tom Skerritt", Ratings: []float64{5, 5, 4}},
		{Title: "Arrival", Genre: models.GenreList{"Sci-Fi", "Drama"}, Actors: "Amy Adams, Jeremy Renner", Ratings: []float64{4, 4}},
		{Title: "Amélie", Genre: models.GenreList{"Comedy"}, Actors: "Audrey Tautou, Mathieu Kassovitz", Ratings: []float64{5}},
		{Title: "The Thing", Genre: models.GenreList{"Horror"}, Actors: "Kurt Russell, Keith David", Ratings: []float64{4, 5, 3}},
		{Title: "Spirited Away", Genre: models.GenreList{"Animation", "Fantasy"}, Actors: "Rumi Hiiragi, Miyu Irino", Ratings: []float64{5, 5}},
		{Title: "Paddington 2", Genre: models.GenreList{"Comedy", "Family"}, Actors: "Ben Whishaw, Hugh Grant", Ratings: []float64{}},
		{Title: "Mad Max: Fury Road", Genre: models.GenreList{"Action", "Sci-Fi"}, Actors: "Tom Hardy, Charlize Theron", Ratings: []float64{5, 4}},
		{Title: "Parasite", Genre: models.GenreList{"Thriller", "Drama"}, Actors: "Song Kang-ho, Choi Woo-shik", Ratings: []float64{5, 5, 5}},
		{Title: "Fargo", Genre: models.GenreList{"Crime"}, Actors: "Frances McDormand, William H. Macy", Ratings: []float64{4}},
		{Title: "The Princess Bride", Genre: models.GenreList{"Adventure", "Comedy", "Fantasy"}, Actors: "Cary Elwes, Robin Wright", Ratings: []float64{5, 4, 4}},
		{Title: "Before Sunrise", Genre: models.GenreList{"Romance", "Drama"}, Actors: "Ethan Hawke, Julie Delpy", Ratings: []float64{4, 3}},
	}
}

// SeedMockData inserts SampleMovies when the collection is empty. It
// returns the number of movies inserted; a non-empty collection is left
// untouched and 0 is returned.
func SeedMockData(ctx context.Context, s Seeder) (int, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count before seeding: %w", err)
	}
	if count > 0 {
		logging.Info().Int64("existing", count).Msg("Collection not empty, skipping mock data seeding")
		return 0, nil
	}

	movies := SampleMovies()
	if err := s.Insert(ctx, movies); err != nil {
		return 0, fmt.Errorf("insert mock data: %w", err)
	}

	logging.Info().Int("movies", len(movies)).Msg("Seeded collection with mock data")
	return len(movies), nil
}
