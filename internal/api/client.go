// Package api fetches HN items from the Firebase API and assembles them
// into the comment tree consumed by the reconciler.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL = "https://hacker-news.firebaseio.com/v0"
	requestTimeout = 10 * time.Second
	maxConcurrent  = 10
	userAgent      = "hnrecap/1.0"
)

// Client is the HN API client.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a new HN API client.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: defaultBaseURL,
	}
}

// NewClientWith creates a client against a custom base URL with a custom
// HTTP client. Used by tests.
func NewClientWith(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: baseURL}
}

// get fetches a URL and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// GetItem fetches a single item by ID.
func (c *Client) GetItem(ctx context.Context, id int) (*Item, error) {
	url := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
	var item Item
	if err := c.get(ctx, url, &item); err != nil {
		return nil, err
	}
	if item.ID == 0 {
		// Firebase answers "null" for unknown ids.
		return nil, nil
	}
	return &item, nil
}

// BatchGetItems fetches multiple items concurrently with a concurrency limit.
// Returns items in the same order as the input IDs. Failed fetches are nil.
func (c *Client) BatchGetItems(ctx context.Context, ids []int) ([]*Item, error) {
	results := make([]*Item, len(ids))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			item, err := c.GetItem(ctx, id)
			if err != nil {
				// Non-fatal: individual items can fail.
				return nil
			}
			mu.Lock()
			results[i] = item
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
