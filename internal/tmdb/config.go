package tmdb

import (
	"fmt"
)

const (
	BaseURL      = "https://api.themoviedb.org/3"
	ImageBaseURL = "https://image.tmdb.org/t/p/"

	SizePosterW185 = "w185"
	SizePosterW500 = "w500"
)

// Config carries the deployment-provided credential and, for tests, an
// override of the API base URL.
type Config struct {
	APIKey  string
	BaseURL string
}

func NewConfig(apiKey string) *Config {
	return &Config{
		APIKey:  apiKey,
		BaseURL: BaseURL,
	}
}

func BuildImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s%s%s", ImageBaseURL, size, path)
}

func BuildPosterURL(path string) string {
	return BuildImageURL(SizePosterW500, path)
}

func BuildThumbnailURL(path string) string {
	return BuildImageURL(SizePosterW185, path)
}
