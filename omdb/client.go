package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public OMDb endpoint
const DefaultBaseURL = "https://www.omdbapi.com"

var imdbIDPattern = regexp.MustCompile(`^tt\d{5,}$`)

// ValidID reports whether id looks like an IMDb title id
func ValidID(id string) bool {
	return imdbIDPattern.MatchString(id)
}

// Client wraps the OMDb API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new OMDb client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: omdb API key is required", ErrInvalidConfig)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// GetMovie fetches the detailed record for an IMDb id
func (c *Client) GetMovie(ctx context.Context, imdbID string) (*Movie, error) {
	imdbID = strings.TrimSpace(imdbID)
	if !ValidID(imdbID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, imdbID)
	}

	params := url.Values{
		"apikey": {c.apiKey},
		"i":      {imdbID},
	}
	requestURL := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	// the URL carries the key, so only the id is logged
	c.logger.Debug().Str("imdb_id", imdbID).Msg("Fetching OMDb title")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, &connError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &connError{err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = firstNonEmpty(env.Message, env.Error)
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)
	}
	if strings.EqualFold(env.Response, "false") {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}

	var movie Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if movie.IMDbID == "" {
		movie.IMDbID = imdbID
	}

	c.logger.Debug().
		Str("imdb_id", imdbID).
		Str("title", movie.Title).
		Msg("Retrieved OMDb title")

	return &movie, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
