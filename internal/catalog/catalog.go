// Package catalog implements the five request workflows as plain
// functions over a store and a metadata client, independent of any HTTP
// framework. Each workflow returns its result data plus the next action
// the presentation layer should take.
package catalog

import (
	"fmt"

	"reelrank/internal/movies"
	"reelrank/internal/tmdb"
)

// Store is the slice of the movie store the workflows need.
type Store interface {
	ListAll() ([]movies.Movie, error)
	GetByID(id uint) (*movies.Movie, error)
	Create(movie *movies.Movie) error
	UpdateRatingAndReview(id uint, rating float64, review string) (*movies.Movie, error)
	Delete(id uint) error
}

// Metadata is the slice of the TMDb client the workflows need.
type Metadata interface {
	SearchMovies(query string) (*tmdb.MovieSearchResponse, error)
	GetMovieDetails(tmdbID int) (*tmdb.MovieDetails, error)
}

// NextAction tells the presentation layer where to go after a workflow.
type NextAction int

const (
	// NextPrompt re-presents the current input form.
	NextPrompt NextAction = iota
	// NextSelect shows the candidate selection page.
	NextSelect
	// NextRate moves to the rating form for a specific movie.
	NextRate
	// NextHome returns to the ranked listing.
	NextHome
)

// ValidationError is a user-visible input problem. It is recovered by
// re-presenting the form, never by failing the request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
