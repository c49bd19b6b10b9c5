// Package library implements the media library server client and the
// in-memory title index the engine matches candidates against.
package library

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/umputun/reelscope/pkg/config"
	"github.com/umputun/reelscope/pkg/domain"
)

// Entry is a single movie in the local library
type Entry struct {
	Key    string  `json:"key"` // rating key, stable identity within the library
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// Client talks to the media library server
type Client struct {
	http    *resty.Client
	section string
}

// NewClient creates a library client from configuration
func NewClient(cfg config.LibraryConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetHeader("X-Plex-Token", cfg.Token)
	return &Client{http: httpClient, section: cfg.Section}
}

// Movies returns all movies in the configured library section
func (c *Client) Movies(ctx context.Context) ([]Entry, error) {
	var result struct {
		Items []Entry `json:"items"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("section", c.section).
		SetResult(&result).
		Get("/library/{section}/movies")
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list movies: library returned status %d", resp.StatusCode())
	}
	return result.Items, nil
}

// GetCollection returns the named collection, nil when it doesn't exist
func (c *Client) GetCollection(ctx context.Context, name string) (*domain.Collection, error) {
	var result struct {
		Name     string   `json:"name"`
		Keys     []string `json:"keys"`
		Promoted bool     `json:"promoted"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("section", c.section).
		SetPathParam("name", name).
		SetResult(&result).
		Get("/library/{section}/collections/{name}")
	if err != nil {
		return nil, fmt.Errorf("get collection %q: %w", name, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get collection %q: library returned status %d", name, resp.StatusCode())
	}
	return &domain.Collection{Name: result.Name, Keys: result.Keys, Promoted: result.Promoted}, nil
}

// CreateCollection creates a new collection with the given member keys
func (c *Client) CreateCollection(ctx context.Context, name string, keys []string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("section", c.section).
		SetBody(map[string]interface{}{"name": name, "keys": keys}).
		Post("/library/{section}/collections")
	if err != nil {
		return fmt.Errorf("create collection %q: %w", name, err)
	}
	if resp.IsError() {
		return fmt.Errorf("create collection %q: library returned status %d", name, resp.StatusCode())
	}
	return nil
}

// AddItem adds a single library entry to an existing collection
func (c *Client) AddItem(ctx context.Context, name, key string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("section", c.section).
		SetPathParam("name", name).
		SetPathParam("key", key).
		Put("/library/{section}/collections/{name}/items/{key}")
	if err != nil {
		return fmt.Errorf("add item %s to %q: %w", key, name, err)
	}
	if resp.IsError() {
		return fmt.Errorf("add item %s to %q: library returned status %d", key, name, resp.StatusCode())
	}
	return nil
}

// SetPromoted toggles home-screen promotion for a collection
func (c *Client) SetPromoted(ctx context.Context, name string, promoted bool) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("section", c.section).
		SetPathParam("name", name).
		SetBody(map[string]bool{"promoted": promoted}).
		Put("/library/{section}/collections/{name}/promote")
	if err != nil {
		return fmt.Errorf("promote collection %q: %w", name, err)
	}
	if resp.IsError() {
		return fmt.Errorf("promote collection %q: library returned status %d", name, resp.StatusCode())
	}
	return nil
}
