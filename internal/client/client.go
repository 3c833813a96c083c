// Package client consumes the lookup service: a thin HTTP API client and
// the Chooser display model that the terminal chooser drives.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"color-chooser/internal/colors"
)

// ErrNotFound is returned when the service answers 404 for a name.
var ErrNotFound = errors.New("color not found")

// StatusError is any other non-2xx answer.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("lookup service returned %d", e.Code)
	}
	return fmt.Sprintf("lookup service returned %d: %s", e.Code, e.Message)
}

// retryable reports whether another attempt could succeed: transport
// errors and 5xx only.
func retryable(err error) bool {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	return true
}

// RetryPolicy is a finite exponential backoff. The zero value means a
// single attempt.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	return p.Backoff << attempt
}

// Client talks to the lookup service under a base URL such as
// "http://localhost:3000/api".
type Client struct {
	base  *url.URL
	http  *http.Client
	retry RetryPolicy
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithRetry enables a finite retry policy for List and Get.
func WithRetry(attempts int, backoff time.Duration) ClientOption {
	return func(c *Client) { c.retry = RetryPolicy{Attempts: attempts, Backoff: backoff} }
}

// New parses baseURL; paths "/colors" and "/colors/{name}" are resolved
// beneath it.
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" || u.RawQuery != "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required, no query", baseURL)
	}

	c := &Client{
		base: u,
		http: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List fetches every color record.
func (c *Client) List(ctx context.Context) ([]colors.Record, error) {
	var out []colors.Record
	err := c.do(ctx, "/colors", &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one record by exact name.
func (c *Client) Get(ctx context.Context, name string) (colors.Record, error) {
	var out colors.Record
	if err := c.do(ctx, "/colors/"+url.PathEscape(name), &out); err != nil {
		return colors.Record{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, path string, v any) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = c.once(ctx, path, v)
		if attempt+1 >= c.retry.Attempts || !retryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retry.delay(attempt)):
		}
	}
}

func (c *Client) once(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String()+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &e)
		return &StatusError{Code: resp.StatusCode, Message: e.Error}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
