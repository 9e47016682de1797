// Package github reads a user's public repository listing from the GitHub
// REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"

	// PageSize is the number of most recently updated repositories requested.
	PageSize = 12

	httpTimeout = 10 * time.Second
)

var (
	// ErrNotFound is returned when the account does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and unexpected statuses.
	ErrNetwork = errors.New("network error")
)

// Client issues listing requests against a GitHub-compatible API.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
}

// NewClient creates a client for baseURL. An empty token sends
// unauthenticated requests, which have lower rate limits.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: headers,
	}
}

// ListURL is the listing endpoint for account: most recently updated first,
// one page of PageSize entries.
func (c *Client) ListURL(account string) string {
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", fmt.Sprint(PageSize))
	return fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(account), q.Encode())
}

// ListRepos returns the raw listing body for account. The body is not
// decoded here so callers can decide how to treat unexpected shapes.
func (c *Client) ListRepos(ctx context.Context, account string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ListURL(account), nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("%w: github user %s", err, account)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	return body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
