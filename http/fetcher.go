// Package http provides an HTTP-based implementation of
// gutenfreq.TextFetcher for downloading plain-text book bodies.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"gutenfreq"
)

// DefaultFetchTimeout is the default timeout for book downloads. Book
// bodies run into the megabytes, so this is more generous than the catalog
// search timeout.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements gutenfreq.TextFetcher at compile time.
var _ gutenfreq.TextFetcher = (*Fetcher)(nil)

// Fetcher retrieves text content from URLs using plain HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchText downloads the raw body at url as text. The fetch is attempted
// exactly once; a failed download surfaces as ETRANSPORT and is never
// retried here.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "invalid request for %s: %s", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "fetch %s: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "read body from %s: %s", url, err)
	}

	return string(body), nil
}
