// Package gutenfreq provides a local word frequency tool for public-domain
// books. It looks books up by title or URL, downloads the plain-text body
// from Project Gutenberg, computes the most frequent non-trivial words, and
// caches the result in a local SQLite database keyed by title.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or the service they talk to (e.g., sqlite/,
// gutendex/, http/).
package gutenfreq
