// Package api is the dashboard's only I/O boundary to the EcoKosova backend.
// Every failure leaves this package as an *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const (
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultTimeout = 15 * time.Second

	maxErrorBody = 64 << 10
)

// TokenSource supplies the bearer token for outgoing requests. The backend's
// auth flow and data flow are not linked yet, so the default client has none.
type TokenSource func() string

// Client talks JSON to the backend REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	attempts   uint
	retryDelay time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithTokenSource attaches "Authorization: Bearer <token>" when the source
// returns a non-empty token
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithRetry sets how many times idempotent GETs are attempted
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		if attempts == 0 {
			attempts = 1
		}
		c.attempts = attempts
		c.retryDelay = delay
	}
}

// New creates a client for baseURL (e.g. http://localhost:8080/api)
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		attempts:   3,
		retryDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	var lastErr error
	err := retry.Do(
		func() error {
			lastErr = c.do(ctx, http.MethodGet, path, query, nil, out)
			if lastErr != nil && !retryable(lastErr) {
				return retry.Unrecoverable(lastErr)
			}
			return lastErr
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("🔁 Retrying GET %s (attempt %d): %v", path, n+1, err)
		}),
	)
	if err == nil {
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return transportError(err)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: "Të dhënat e kërkesës janë të pavlefshme", Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Message: "Kërkesë e pavlefshme", Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return responseError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}
	if s, ok := out.(*string); ok {
		// some endpoints answer with plain text
		if json.Unmarshal(raw, s) != nil {
			*s = strings.TrimSpace(string(raw))
		}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Message:    "Përgjigje e pavlefshme nga serveri",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode %s %s: %w", method, path, err),
		}
	}
	return nil
}

func retryable(err error) bool {
	apiErr := AsError(err)
	if apiErr.IsTransport() {
		return !errors.Is(apiErr.Err, context.Canceled)
	}
	return apiErr.StatusCode >= 500
}

func pathEscape(s string) string { return url.PathEscape(s) }
