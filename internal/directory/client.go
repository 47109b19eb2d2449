package directory

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/castdex/castdex/internal/logging"
)

const (
	// DefaultBaseURL is the public character directory endpoint
	DefaultBaseURL = "https://rickandmortyapi.com/api"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second
)

// Client represents an HTTP client for querying the character directory
type Client struct {
	// BaseURL is the directory API root (e.g., "https://rickandmortyapi.com/api")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client against the public directory endpoint
func NewClient() *Client {
	return NewClientWithURL(DefaultBaseURL)
}

// NewClientWithURL creates a client with a custom base URL
// baseURL: Directory API root without a trailing slash
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Search queries the directory for characters whose name matches the
// given text. The query is sent percent-encoded. Returns an empty slice
// when the directory has no match (including its HTTP 404 "nothing
// found" answer) and a typed error on network or parse failure.
//
// A single request, no retries: the caller owns staleness handling.
func (c *Client) Search(name string) ([]Character, error) {
	if name == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("name", name)
	requestURL := c.BaseURL + "/character/?" + q.Encode()

	start := time.Now()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create search request", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.LogSearchFailure(name, err)
		return nil, NewNetworkError("search request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// The directory answers 404 with an error body when no character
	// matches; that is an empty result, not a failure.
	if resp.StatusCode == http.StatusNotFound {
		logging.LogSearch(name, 0, time.Since(start))
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	var parsed SearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, NewParseError("failed to parse directory response", err)
	}

	logging.LogSearch(name, len(parsed.Results), time.Since(start))

	if parsed.Results == nil {
		return []Character{}, nil
	}
	return parsed.Results, nil
}

// SearchURL returns the fully encoded request URL for a query.
// Useful for debugging and for logging at debug level.
func (c *Client) SearchURL(name string) string {
	q := url.Values{}
	q.Set("name", name)
	return c.BaseURL + "/character/?" + q.Encode()
}

// Ping performs a simple reachability check against the directory root.
func (c *Client) Ping() error {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/character/")
	if err != nil {
		return NewNetworkError("directory unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	logging.Debug("directory ping ok", zap.String("base_url", c.BaseURL))
	return nil
}
