// Package wikipedia looks up encyclopedic summaries via the REST summary
// endpoint. Lookups are best-effort: a missing page is not an error, and
// callers are expected to continue without a result on failure.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/heriscience/backend/models"
)

const DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Client fetches page summaries. The zero value targets English Wikipedia.
type Client struct {
	BaseURL string
}

// summaryResponse is the subset of the REST summary payload we read.
type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// httpDo is a package-level var so tests can mock the network layer.
var httpDo = defaultHTTPDo

func defaultHTTPDo(req *http.Request) (*http.Response, error) {
	return http.DefaultClient.Do(req)
}

// SetHTTPDo overrides the HTTP layer for testing. Pass nil to restore the
// default.
func SetHTTPDo(fn func(*http.Request) (*http.Response, error)) {
	if fn == nil {
		httpDo = defaultHTTPDo
		return
	}
	httpDo = fn
}

// Lookup fetches the summary for a query. A page that does not exist
// returns (nil, nil); transport and decode problems return an error.
func (c *Client) Lookup(ctx context.Context, query string) (*models.Wikipedia_Info, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	title := url.PathEscape(strings.ReplaceAll(query, " ", "_"))
	endpoint := fmt.Sprintf("%s/page/summary/%s", c.baseURL(), title)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Heri-Science/1.0 (artifact research backend)")

	resp, err := httpDo(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request to Wikipedia API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from Wikipedia API", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var summary summaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	if summary.Extract == "" {
		return nil, nil
	}

	return &models.Wikipedia_Info{
		Title:     summary.Title,
		Summary:   summary.Extract,
		URL:       summary.ContentURLs.Desktop.Page,
		Thumbnail: summary.Thumbnail.Source,
	}, nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}
