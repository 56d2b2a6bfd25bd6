package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrUpstream marks any failure talking to TMDb: network errors,
// non-200 responses, and malformed payloads. Callers never retry.
var ErrUpstream = errors.New("tmdb request failed")

type Client struct {
	config     *Config
	logger     *slog.Logger
	httpClient *http.Client
}

func NewClient(config *Config, logger *slog.Logger) *Client {
	return &Client{
		config: config,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.config.APIKey)

	fullURL := fmt.Sprintf("%s%s?%s", c.config.BaseURL, endpoint, params.Encode())

	c.logger.Debug("tmdb request", slog.String("endpoint", endpoint))

	resp, err := c.httpClient.Get(fullURL)
	if err != nil {
		c.logger.Error("tmdb request failed", slog.String("endpoint", endpoint), slog.Any("error", err))
		return nil, fmt.Errorf("%w: http get: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("tmdb error response", slog.String("endpoint", endpoint), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	return body, nil
}

// SearchMovies runs a title search and returns the raw candidate list.
func (c *Client) SearchMovies(query string) (*MovieSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	body, err := c.get("/search/movie", params)
	if err != nil {
		return nil, err
	}

	var result MovieSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error("tmdb search unmarshal failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrUpstream, err)
	}

	return &result, nil
}

// GetMovieDetails fetches the full metadata record for one TMDb id.
func (c *Client) GetMovieDetails(tmdbID int) (*MovieDetails, error) {
	endpoint := fmt.Sprintf("/movie/%d", tmdbID)
	params := url.Values{}
	params.Set("language", "en-US")

	body, err := c.get(endpoint, params)
	if err != nil {
		return nil, err
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		c.logger.Error("tmdb details unmarshal failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrUpstream, err)
	}

	return &details, nil
}
