package kinopoisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public Kinopoisk API endpoint
const DefaultBaseURL = "https://api.kinopoisk.dev"

const defaultPageSize = 10

// Client represents a Kinopoisk API client
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Kinopoisk client
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: kinopoisk API key is required", ErrInvalidConfig)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		pageSize: defaultPageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// PageSize returns the number of records requested per page
func (c *Client) PageSize() int {
	return c.pageSize
}

// doRequest performs an authenticated GET and returns the body
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("query", params.Encode()).
		Msg("Making Kinopoisk API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &connError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &connError{err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Message = eb.text()
		}
		return nil, apiErr
	}

	return body, nil
}

// Search runs a keyword search and returns one page of results
func (c *Client) Search(ctx context.Context, text string, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	params, err := query.Values(searchParams{
		Page:  page,
		Limit: c.pageSize,
		Query: text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search parameters: %w", err)
	}

	body, err := c.doRequest(ctx, "/v1.4/movie/search", params)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	var result Page
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.logger.Debug().
		Str("query", text).
		Int("page", page).
		Int("count", len(result.Docs)).
		Int("pages", result.Pages).
		Msg("Retrieved search results from Kinopoisk")

	return &result, nil
}

// Discover lists titles matching the given filters. Only titles with an
// IMDb id are requested and only their external ids are selected.
func (c *Client) Discover(ctx context.Context, p DiscoverParams) (*Page, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = c.pageSize
	}
	if p.NotNullFields == "" {
		p.NotNullFields = "externalId.imdb"
	}
	if p.SelectFields == "" {
		p.SelectFields = "externalId"
	}

	params, err := query.Values(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode discover parameters: %w", err)
	}

	body, err := c.doRequest(ctx, "/v1.4/movie", params)
	if err != nil {
		return nil, fmt.Errorf("failed to discover movies: %w", err)
	}

	var result Page
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if result.Page == 0 {
		result.Page = p.Page
	}

	c.logger.Debug().
		Str("type", p.Type).
		Strs("genres", p.Genres).
		Int("page", p.Page).
		Int("count", len(result.Docs)).
		Msg("Retrieved discovery results from Kinopoisk")

	return &result, nil
}
