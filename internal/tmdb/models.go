package tmdb

import (
	"strconv"
	"strings"
)

type MovieSearchResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is one search candidate: just enough to let the user pick.
type MovieResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
}

// MovieDetails is the full record used to build a catalog entry.
type MovieDetails struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
}

// Year extracts the release year, or 0 when the date is absent or
// malformed.
func (d *MovieDetails) Year() int {
	part, _, _ := strings.Cut(d.ReleaseDate, "-")
	year, err := strconv.Atoi(part)
	if err != nil {
		return 0
	}
	return year
}
