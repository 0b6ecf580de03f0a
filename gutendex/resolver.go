// Package gutendex provides a gutenfreq.CatalogResolver backed by the
// Gutendex search API (https://gutendex.com), a JSON index of the Project
// Gutenberg catalog.
package gutendex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"gutenfreq"
)

// DefaultBaseURL is the public Gutendex API endpoint.
const DefaultBaseURL = "https://gutendex.com"

// DefaultSearchTimeout is the default timeout for catalog search requests.
const DefaultSearchTimeout = 10 * time.Second

// DefaultCacheTTL is how long successful resolutions are memoized in
// memory. Negative results are never cached.
const DefaultCacheTTL = 5 * time.Minute

// Ensure Resolver implements gutenfreq.CatalogResolver at compile time.
var _ gutenfreq.CatalogResolver = (*Resolver)(nil)

// Resolver resolves book titles to plain-text URLs via the Gutendex API.
type Resolver struct {
	baseURL  string
	timeout  time.Duration
	cacheTTL time.Duration
	client   *http.Client
	memo     *cache.Cache
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(r *Resolver) {
		r.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultSearchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = d
	}
}

// WithCacheTTL sets how long successful resolutions are memoized.
func WithCacheTTL(d time.Duration) Option {
	return func(r *Resolver) {
		r.cacheTTL = d
	}
}

// NewResolver creates a new Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		baseURL:  DefaultBaseURL,
		timeout:  DefaultSearchTimeout,
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{Timeout: r.timeout}
	r.memo = cache.New(r.cacheTTL, 2*r.cacheTTL)

	return r
}

// searchResponse mirrors the subset of the Gutendex response the resolver
// reads.
type searchResponse struct {
	Results []struct {
		Formats map[string]string `json:"formats"`
	} `json:"results"`
}

// ResolveTitle searches the catalog for title and returns the URL of a
// plain-text edition of the first match.
func (r *Resolver) ResolveTitle(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", gutenfreq.Errorf(gutenfreq.ENOTFOUND, "book title required")
	}

	memoKey := strings.ToLower(title)
	if location, ok := r.memo.Get(memoKey); ok {
		return location.(string), nil
	}

	searchURL := fmt.Sprintf("%s/books?search=%s", r.baseURL, url.QueryEscape(title))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "invalid catalog request: %s", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "catalog search failed: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "catalog search returned HTTP %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", gutenfreq.Errorf(gutenfreq.ETRANSPORT, "malformed catalog response: %s", err)
	}

	location := selectPlainText(parsed)
	if location == "" {
		return "", gutenfreq.Errorf(gutenfreq.ENOTFOUND, "no catalog match for %q", title)
	}

	r.memo.Set(memoKey, location, cache.DefaultExpiration)
	return location, nil
}

// selectPlainText picks a plain-text URL from the first result's formats.
// A "text/plain" label with a ".txt" URL wins; any "text/plain" label is
// the fallback. Labels are visited in sorted order so the selection does
// not depend on map iteration order.
func selectPlainText(resp searchResponse) string {
	if len(resp.Results) == 0 {
		return ""
	}
	formats := resp.Results[0].Formats

	labels := make([]string, 0, len(formats))
	for label := range formats {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if strings.Contains(label, "text/plain") && strings.HasSuffix(formats[label], ".txt") {
			return formats[label]
		}
	}
	for _, label := range labels {
		if strings.Contains(label, "text/plain") {
			return formats[label]
		}
	}
	return ""
}
