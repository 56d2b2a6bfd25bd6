package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"reelrank/internal/movies"
	"reelrank/internal/ranking"
	"reelrank/internal/tmdb"
)

// ListRanked returns every movie ordered worst-to-best with transient
// ranks attached: rank 1 is the highest rating, rank N the lowest.
func ListRanked(store Store) ([]movies.Movie, error) {
	all, err := store.ListAll()
	if err != nil {
		return nil, err
	}
	ranking.Rank(all)
	return all, nil
}

// SearchInput is a title search submission. Submitted is false on the
// initial page visit, when no form has been posted yet.
type SearchInput struct {
	Title     string
	Submitted bool
}

// SearchResult either re-presents the search prompt (with Validation set
// when the submission was rejected) or carries the candidate list.
type SearchResult struct {
	Candidates []tmdb.MovieResult
	Validation *ValidationError
	Next       NextAction
}

// SearchForTitle validates the submitted title and queries TMDb. An
// empty title never reaches the remote service.
func SearchForTitle(client Metadata, in SearchInput) (*SearchResult, error) {
	if !in.Submitted {
		return &SearchResult{Next: NextPrompt}, nil
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return &SearchResult{
			Validation: &ValidationError{Field: "title", Message: "movie title is required"},
			Next:       NextPrompt,
		}, nil
	}

	resp, err := client.SearchMovies(title)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Candidates: resp.Results, Next: NextSelect}, nil
}

// ConfirmResult carries the freshly created movie; Next is always
// NextRate so the caller chains straight into the rating form.
type ConfirmResult struct {
	Movie *movies.Movie
	Next  NextAction
}

// ConfirmCandidate fetches the chosen candidate's full metadata and
// creates the catalog record with rating and review unset. A title
// collision surfaces as movies.ErrDuplicateTitle; there is no dedup
// pre-check.
func ConfirmCandidate(store Store, client Metadata, externalID int) (*ConfirmResult, error) {
	details, err := client.GetMovieDetails(externalID)
	if err != nil {
		return nil, err
	}

	movie := &movies.Movie{
		Title:       details.Title,
		Slug:        slug.Make(details.Title),
		Year:        details.Year(),
		Description: details.Overview,
		ImageURL:    tmdb.BuildPosterURL(details.PosterPath),
	}
	if err := store.Create(movie); err != nil {
		return nil, err
	}

	return &ConfirmResult{Movie: movie, Next: NextRate}, nil
}

// RateInput is a rating form submission for one record. On the initial
// visit Submitted is false and only ID is meaningful.
type RateInput struct {
	ID        uint
	Rating    string
	Review    string
	Submitted bool
}

// RateResult carries the movie for the form plus the outcome: NextHome
// after a successful update, NextPrompt to (re-)present the form.
type RateResult struct {
	Movie      *movies.Movie
	Validation *ValidationError
	Next       NextAction
}

// RateExisting looks up the record and, on submission, sets rating and
// review together. The rating must parse as a decimal in [0, 10];
// anything else re-presents the form with a validation message.
func RateExisting(store Store, in RateInput) (*RateResult, error) {
	movie, err := store.GetByID(in.ID)
	if err != nil {
		return nil, err
	}

	if !in.Submitted {
		return &RateResult{Movie: movie, Next: NextPrompt}, nil
	}

	rating, parseErr := strconv.ParseFloat(strings.TrimSpace(in.Rating), 64)
	if parseErr != nil || math.IsNaN(rating) || rating < 0 || rating > 10 {
		return &RateResult{
			Movie:      movie,
			Validation: &ValidationError{Field: "rating", Message: "rating must be a number between 0 and 10"},
			Next:       NextPrompt,
		}, nil
	}

	updated, err := store.UpdateRatingAndReview(in.ID, rating, in.Review)
	if err != nil {
		return nil, err
	}
	return &RateResult{Movie: updated, Next: NextHome}, nil
}

// RemoveRecord deletes the record and sends the caller back to the
// ranked listing. A missing id propagates movies.ErrNotFound.
func RemoveRecord(store Store, id uint) (NextAction, error) {
	if err := store.Delete(id); err != nil {
		return NextPrompt, err
	}
	return NextHome, nil
}
