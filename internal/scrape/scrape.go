// Package scrape extracts the visible comments from a rendered HN item
// page: render order, tag-stripped text and downvote fade level, keyed by
// comment id. Comments the page doesn't show (flagged, collapsed, or under
// a collapsed ancestor) simply don't appear in the result.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hnrecap/internal/render"
	"hnrecap/internal/thread"
)

const (
	defaultBaseURL = "https://news.ycombinator.com"
	requestTimeout = 10 * time.Second
	userAgent      = "hnrecap/1.0"
)

// Client fetches rendered item pages from news.ycombinator.com.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a page scrape client.
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

// GetItemPage fetches and parses the rendered page for a story.
func (c *Client) GetItemPage(ctx context.Context, storyID int) (map[int]thread.DomRecord, error) {
	url := fmt.Sprintf("%s/item?id=%d", c.baseURL, storyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching item page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("item page returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading item page: %w", err)
	}

	return ParseItemHTML(string(body))
}

var (
	rowClassRe = regexp.MustCompile(`^([^"]*)" id="(\d+)"`)
	commtextRe = regexp.MustCompile(`(?s)class="commtext\s*([a-z0-9]*)">(.*?)</div>\s*<div class="reply">`)
)

// downvotePalette maps HN's comment fade color classes to a downvote level.
// The site renders each additional downvote as a lighter text color, from
// c00 (full black, no downvotes) through cdd (nearly invisible).
var downvotePalette = map[string]int{
	"c00": 0,
	"c5a": 1,
	"c73": 2,
	"c82": 3,
	"c88": 4,
	"c9c": 5,
	"caa": 6,
	"cbe": 7,
	"cce": 8,
	"cdd": 9,
}

// ParseItemHTML extracts visible comments from item page HTML. Positions are
// assigned 0-based in document order, counting only emitted records.
//
// Each comment row looks like:
//
//	<tr class="athing comtr" id="NNNN"> ... <div class="commtext c00">...</div>
//
// Collapsed rows carry an extra "coll" class and their hidden descendants
// "noshow"; both are skipped.
func ParseItemHTML(body string) (map[int]thread.DomRecord, error) {
	parts := strings.Split(body, `class="athing comtr`)
	result := make(map[int]thread.DomRecord, len(parts))

	position := 0
	for _, part := range parts[1:] {
		// The chunk starts with the remainder of the row's class attribute,
		// then the id: `" id="NNNN">` or ` coll" id="NNNN">`.
		m := rowClassRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		classes := m[1]
		if strings.Contains(classes, "coll") || strings.Contains(classes, "noshow") {
			continue
		}
		id, err := strconv.Atoi(m[2])
		if err != nil || id == 0 {
			continue
		}

		tm := commtextRe.FindStringSubmatch(part)
		if tm == nil {
			// No comment body in this row (e.g. deleted placeholder).
			continue
		}

		result[id] = thread.DomRecord{
			Position:  position,
			Text:      render.Strip(tm[2]),
			Downvotes: downvotePalette[tm[1]],
		}
		position++
	}

	return result, nil
}
