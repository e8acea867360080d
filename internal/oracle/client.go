package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Reader is implemented by *Client and faked in tests
type Reader interface {
	RequestReading(ctx context.Context, payload Payload) (*Response, error)
}

// Ensure Client implements Reader at compile time.
var _ Reader = (*Client)(nil)

const (
	defaultUserAgent = "ppf/0.1"
	healthTimeout    = 5 * time.Second
	maxErrorBody     = 4 << 10
)

// RemoteError is returned when the service answers with a non-2xx status
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("oracle: status %d: %s", e.Status, body)
}

// NetworkError is returned when a request could not be sent or its
// response could not be read
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("oracle: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client talks to the reading service
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for base, e.g. "http://localhost:8787". A nil
// httpClient uses a client without a timeout; reading requests are never
// cut short.
func NewClient(base string, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("parse oracle base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("oracle base url %q must include scheme and host", base)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: parsed, http: httpClient, userAgent: defaultUserAgent}, nil
}

// BaseURL returns the service base
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// RequestReading posts the spread and returns the service response
func (c *Client) RequestReading(ctx context.Context, payload Payload) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/reading", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &NetworkError{Op: "decode response", Err: err}
	}
	return &out, nil
}

// CheckHealth probes the liveness endpoint and returns its plain-text body
func (c *Client) CheckHealth(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Op: "read health", Err: err}
	}
	return strings.TrimSpace(string(text)), nil
}

// do sends a request and converts non-2xx responses into *RemoteError. The
// caller closes the body of a successful response.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + path

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "execute request", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &RemoteError{Status: resp.StatusCode, Body: string(text)}
	}
	return resp, nil
}
