package gutenfreq

import "context"

// TextFetcher downloads raw text from URLs.
type TextFetcher interface {
	// FetchText retrieves the body at url as text. The call blocks until
	// the download completes, the implementation's timeout expires, or the
	// context is canceled. Returns ETRANSPORT on network failure or a
	// non-success response status. Failed fetches are never retried here.
	FetchText(ctx context.Context, url string) (string, error)
}

// TextConverter converts HTML documents to plain text. It is used to make
// pasted HTML editions analyzable; plain-text bodies pass through the
// pipeline untouched.
type TextConverter interface {
	// Convert strips HTML markup from s and returns the remaining text.
	Convert(s string) (string, error)
}
