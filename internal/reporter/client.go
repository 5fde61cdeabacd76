// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reporter talks to the NIH RePORTER projects search endpoint:
// it issues paged POST queries, flattens nested record fields, and
// accumulates multi-page result sets.
package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/pdiddy/grant-reporter/internal/criteria"
	"github.com/pdiddy/grant-reporter/internal/httputil"
)

// reporterSearchBase is the RePORTER projects search endpoint. Declared
// as a var so tests can substitute an httptest server.
var reporterSearchBase = "https://api.reporter.nih.gov/v2/projects/search"

// MaxPageSize is the largest page the upstream service serves.
const MaxPageSize = 500

// sortField and sortOrder fix the result ordering: most recent project
// start date first. Paging depends on a deterministic order.
const (
	sortField = "project_start_date"
	sortOrder = "desc"
)

// Client issues search requests against the RePORTER API.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	// BaseURL overrides the production search endpoint; empty selects
	// the default.
	BaseURL string
	// MaxRetries bounds retries on rate-limited requests; zero selects
	// the httputil default.
	MaxRetries int
	// Logger receives request diagnostics; nil means no logging.
	Logger *zap.Logger
	// Progress receives page-boundary signals; nil means none.
	Progress Progress
}

// ResultSet accumulates the pages of one logical fetch. Meta comes from
// the most recent page; Results concatenates every page's records in
// arrival order.
type ResultSet struct {
	Meta    map[string]any `json:"meta"`
	Results []any          `json:"results"`
}

// pageRequest is the wire body of one paged search request.
type pageRequest struct {
	Criteria      map[string]any `json:"criteria"`
	Offset        int            `json:"offset"`
	Limit         int            `json:"limit"`
	IncludeFields []string       `json:"include_fields"`
	SortField     string         `json:"sort_field"`
	SortOrder     string         `json:"sort_order"`
}

// pageResponse is the wire shape of one page.
type pageResponse struct {
	Meta    map[string]any `json:"meta"`
	Results []any          `json:"results"`
}

// logger returns the configured logger or a no-op one.
func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// baseURL returns the configured endpoint or the production one.
func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return reporterSearchBase
	}
	return c.BaseURL
}

// httpClient returns the configured HTTP client or the default one.
func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

// fetchPage issues one search request and returns the normalized page
// plus the server-reported total. Any upstream error, malformed body,
// or missing total fails the page.
func (c *Client) fetchPage(ctx context.Context, crit criteria.SearchCriteria, fields []string, limit, offset int) (pageResponse, int, error) {
	body := pageRequest{
		Criteria:      crit.ToAPICriteria(),
		Offset:        offset,
		Limit:         limit,
		IncludeFields: fields,
		SortField:     sortField,
		SortOrder:     sortOrder,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return pageResponse{}, 0, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL(), bytes.NewReader(payload))
	if err != nil {
		return pageResponse{}, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient(), req, c.MaxRetries, c.logger())
	if err != nil {
		return pageResponse{}, 0, fmt.Errorf("RePORTER API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pageResponse{}, 0, fmt.Errorf("RePORTER API returned HTTP %d", resp.StatusCode)
	}

	var page pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return pageResponse{}, 0, fmt.Errorf("parsing RePORTER response: %w", err)
	}

	total, err := totalFromMeta(page.Meta)
	if err != nil {
		return pageResponse{}, 0, err
	}

	normalizeResults(page.Results)

	c.logger().Debug("fetched search page",
		zap.Int("offset", offset),
		zap.Int("limit", limit),
		zap.Int("records", len(page.Results)),
		zap.Int("total", total))

	return page, total, nil
}

// totalFromMeta extracts meta.total. Its absence is an error condition;
// paging cannot terminate without it.
func totalFromMeta(meta map[string]any) (int, error) {
	v, ok := meta["total"]
	if !ok {
		return 0, fmt.Errorf("RePORTER response missing meta.total")
	}
	total, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("RePORTER response meta.total is not a count: %w", err)
	}
	return total, nil
}
