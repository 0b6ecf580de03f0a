package gutenfreq

import (
	"context"
	"time"
)

// Book represents a cached public-domain book. Books are identified by
// title, compared case-insensitively; the stored title is the canonical one
// extracted from the fetched text, which may differ from the user's query.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	SourceURL string    `json:"sourceUrl"`
	TextHash  string    `json:"textHash"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the book contains invalid fields.
func (b *Book) Validate() error {
	if b.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	return nil
}

// WordCount is one entry in a book's ranked word list.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// BookService represents a service for managing cached books and their word
// frequencies.
type BookService interface {
	// FindBookByTitle retrieves a book by title, compared case-insensitively.
	// Returns ENOTFOUND if no book with the title exists.
	FindBookByTitle(ctx context.Context, title string) (*Book, error)

	// WordFrequencies returns the stored ranked word list for a book,
	// ordered by count descending, word ascending.
	WordFrequencies(ctx context.Context, bookID string) ([]WordCount, error)

	// UpsertBook inserts the book, or updates its source URL if a book with
	// the same title already exists, and replaces the book's entire stored
	// word list with freqs. Both writes happen in a single transaction, so a
	// concurrent reader observes either the old or the new word list, never
	// a mix. The book's ID and FetchedAt fields are set on return.
	UpsertBook(ctx context.Context, book *Book, freqs []WordCount) error

	// FindBooks retrieves books matching the filter, most recently fetched
	// first.
	FindBooks(ctx context.Context, filter BookFilter) ([]*Book, error)

	// DeleteBook permanently removes a book and its word frequencies.
	// Returns ENOTFOUND if the book does not exist.
	DeleteBook(ctx context.Context, id string) error
}

// BookFilter represents a filter for FindBooks.
type BookFilter struct {
	ID    *string `json:"id"`
	Title *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
