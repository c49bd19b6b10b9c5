// Package metadata implements the movie metadata service client, a thin
// TMDB-style HTTP API wrapper used for keyword searches and title lookups.
package metadata

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/domain"
)

// Client talks to the metadata service. Safe for concurrent use, the
// engine's bounded worker pool is what keeps request rates acceptable.
type Client struct {
	http *resty.Client
}

// movieResp is a single movie in a service response
type movieResp struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
}

// searchResp is the service search/lookup response envelope
type searchResp struct {
	Results []movieResp `json:"results"`
}

// NewClient creates a metadata client from configuration
func NewClient(cfg config.MetadataConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetQueryParam("api_key", cfg.APIKey)
	return &Client{http: httpClient}
}

// Search finds candidate movies for a keyword
func (c *Client) Search(ctx context.Context, keyword string) ([]domain.Candidate, error) {
	var result searchResp
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", keyword).
		SetResult(&result).
		Get("/search/movie")
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search %q: metadata service returned status %d", keyword, resp.StatusCode())
	}

	candidates := make([]domain.Candidate, 0, len(result.Results))
	for _, m := range result.Results {
		candidates = append(candidates, m.toDomain())
	}
	return candidates, nil
}

// Lookup resolves a title (and optional year) to its canonical candidate.
// Returns nil when the service has no match.
func (c *Client) Lookup(ctx context.Context, title string, year int) (*domain.Candidate, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", title)
	if year > 0 {
		req.SetQueryParam("year", strconv.Itoa(year))
	}

	var result searchResp
	resp, err := req.SetResult(&result).Get("/search/movie")
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", title, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("lookup %q: metadata service returned status %d", title, resp.StatusCode())
	}

	if len(result.Results) == 0 {
		return nil, nil
	}

	// the service orders results by relevance, the first one is canonical
	candidate := result.Results[0].toDomain()
	return &candidate, nil
}

// toDomain converts a service movie to a domain candidate
func (m movieResp) toDomain() domain.Candidate {
	return domain.Candidate{
		ID:       m.ID,
		Title:    m.Title,
		Year:     yearOf(m.ReleaseDate),
		Rating:   m.VoteAverage,
		Overview: m.Overview,
	}
}

// yearOf extracts the year from a YYYY-MM-DD release date, 0 when unknown
func yearOf(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
