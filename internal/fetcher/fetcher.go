package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultUserAgent = "ppf/0.1 (+https://github.com/imdyangs/past-present-future)"
	defaultRate      = 8 // requests per second
	maxImageBytes    = 16 << 20
)

// StatusError reports a non-2xx response
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

// Fetcher performs the outbound image requests: resolving redirector URLs
// to their final location and downloading image bytes.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithRate limits outbound requests to perSecond. Zero or less disables limiting.
func WithRate(perSecond float64) Option {
	return func(f *Fetcher) {
		if perSecond <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// New builds a Fetcher
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 6,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter:   rate.NewLimiter(rate.Limit(defaultRate), 1),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ResolveFinal issues a HEAD request against rawURL, follows redirects and
// returns the URL the chain settled on. No response body is read.
func (f *Fetcher) ResolveFinal(ctx context.Context, rawURL string) (string, error) {
	resp, err := f.do(ctx, http.MethodHead, rawURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	if resp.Request == nil || resp.Request.URL == nil {
		return rawURL, nil
	}
	return resp.Request.URL.String(), nil
}

// Download fetches the body of rawURL, returning the bytes and the response
// Content-Type.
func (f *Fetcher) Download(ctx context.Context, rawURL string) ([]byte, string, error) {
	resp, err := f.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func (f *Fetcher) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}
