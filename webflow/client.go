// Package webflow is a minimal client for the Webflow Data API v2, covering
// the endpoints the localization pipeline needs: locale and content listing,
// paginated DOM/item/property fetch, and localized content updates.
package webflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// DefaultBaseURL is the production Webflow Data API endpoint.
const DefaultBaseURL = "https://api.webflow.com/v2"

// PageLimit is the maximum page size the API allows. Fetches always use it
// to minimize round-trips.
const PageLimit = 100

// Client talks to the Webflow Data API with a bearer token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint (tests, proxies).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the structured logger for request events.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTimeout sets the per-request timeout. Default is 30 seconds.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a Client authenticated with the given API token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		token:      token,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckCredentials verifies a token is configured. The token's validity is
// only known after the first request.
func (c *Client) CheckCredentials() error {
	if c.token == "" {
		return &bumblebee.CredentialError{Provider: "webflow"}
	}
	return nil
}

// do performs one API request and decodes the JSON response into out.
// Non-2xx statuses and network failures surface as *bumblebee.TransportError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.CheckCredentials(); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api-call", "method", method, "path", path, "err", err)
		return &bumblebee.TransportError{Op: method + " " + path, Cause: err}
	}
	defer resp.Body.Close()

	c.logger.Info("api-call",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &bumblebee.TransportError{Op: method + " " + path, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &bumblebee.IntegrityError{
				Message: fmt.Sprintf("decoding %s %s response: %v", method, path, err),
			}
		}
	}
	return nil
}
