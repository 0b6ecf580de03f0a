// Package lookup provides the book lookup pipeline. It decides between
// serving a ranked word list from the local cache and resolving, fetching,
// analyzing, and persisting the book's text.
package lookup

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net/url"

	"github.com/cespare/xxhash/v2"

	"gutenfreq"
)

// DefaultTopN is the number of ranked words returned when TopN is unset.
const DefaultTopN = 10

// Service orchestrates book lookups.
type Service struct {
	Books   gutenfreq.BookService
	Catalog gutenfreq.CatalogResolver
	Fetcher gutenfreq.TextFetcher
	// Converter is optional; required only for FetchOptions.StripHTML.
	Converter gutenfreq.TextConverter
	Analyzer  gutenfreq.Analyzer
	// Limiter is optional; when set, fetches wait for the target domain's
	// rate limit.
	Limiter gutenfreq.DomainLimiter
	// TopN caps the ranked word list. Zero means DefaultTopN.
	TopN int
}

// Result holds the outcome of a single lookup.
type Result struct {
	// Title is the canonical title: the cached one on a hit, the one
	// extracted from the fetched text otherwise.
	Title     string
	SourceURL string
	Words     []gutenfreq.WordCount
	FromCache bool
}

// FetchOptions configure ByLocation.
type FetchOptions struct {
	// StripHTML converts the fetched body from HTML to plain text before
	// analysis. Requires the service's Converter to be set.
	StripHTML bool
}

// ByTitle looks a book up by title. A cached book with at least one stored
// word counts as a hit; a book with an empty word list is re-fetched. On a
// miss the title is resolved through the catalog, and an ENOTFOUND from
// resolution is the normal negative outcome, not a failure.
func (s *Service) ByTitle(ctx context.Context, title string) (*Result, error) {
	book, err := s.Books.FindBookByTitle(ctx, title)
	if err != nil && gutenfreq.ErrorCode(err) != gutenfreq.ENOTFOUND {
		return nil, err
	}

	if book != nil {
		freqs, err := s.Books.WordFrequencies(ctx, book.ID)
		if err != nil {
			return nil, err
		}
		if len(freqs) > 0 {
			return &Result{
				Title:     book.Title,
				SourceURL: book.SourceURL,
				Words:     truncate(freqs, s.topN()),
				FromCache: true,
			}, nil
		}
	}

	location, err := s.Catalog.ResolveTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	return s.fetchAndStore(ctx, location, false)
}

// ByLocation fetches the text at location directly, skipping the cache
// check and catalog resolution. The cached entry for the resulting
// canonical title, if any, is always overwritten.
func (s *Service) ByLocation(ctx context.Context, location string, opts FetchOptions) (*Result, error) {
	if opts.StripHTML && s.Converter == nil {
		return nil, gutenfreq.Errorf(gutenfreq.EINVALID, "no HTML converter configured")
	}
	return s.fetchAndStore(ctx, location, opts.StripHTML)
}

// fetchAndStore runs the miss path: fetch, analyze, persist. Nothing is
// written to the store until analysis has succeeded.
func (s *Service) fetchAndStore(ctx context.Context, location string, stripHTML bool) (*Result, error) {
	if err := s.waitForDomain(ctx, location); err != nil {
		return nil, err
	}

	text, err := s.Fetcher.FetchText(ctx, location)
	if err != nil {
		return nil, err
	}

	if stripHTML {
		text, err = s.Converter.Convert(text)
		if err != nil {
			return nil, err
		}
	}

	title := s.Analyzer.ExtractTitle(text)
	words := s.Analyzer.TopWords(text, s.topN())

	book := &gutenfreq.Book{
		Title:     title,
		SourceURL: location,
		TextHash:  hashText(text),
	}
	if err := s.Books.UpsertBook(ctx, book, words); err != nil {
		return nil, err
	}

	return &Result{
		Title:     book.Title,
		SourceURL: location,
		Words:     words,
	}, nil
}

// waitForDomain blocks on the per-domain rate limit for the fetch target.
func (s *Service) waitForDomain(ctx context.Context, location string) error {
	if s.Limiter == nil {
		return nil
	}
	u, err := url.Parse(location)
	if err != nil || u.Host == "" {
		return nil
	}
	return s.Limiter.Wait(ctx, u.Host)
}

func (s *Service) topN() int {
	if s.TopN <= 0 {
		return DefaultTopN
	}
	return s.TopN
}

func truncate(words []gutenfreq.WordCount, n int) []gutenfreq.WordCount {
	if len(words) > n {
		return words[:n]
	}
	return words
}

// hashText computes xxHash of text as a hex string. Stored on the book so
// a re-fetch can tell whether the upstream text actually changed.
func hashText(text string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(text))
	return hex.EncodeToString(b[:])
}
