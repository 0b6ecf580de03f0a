package gutenfreq

import "context"

// CatalogResolver resolves a book title to a plain-text resource URL using
// an external catalog search API.
type CatalogResolver interface {
	// ResolveTitle searches the catalog for title and returns the URL of a
	// plain-text edition. Returns ENOTFOUND when the title is blank or the
	// catalog has no plain-text match, and ETRANSPORT on network failure or
	// a non-success response status.
	ResolveTitle(ctx context.Context, title string) (string, error)
}
