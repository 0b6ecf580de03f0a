package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gutenfreq"
)

// Compile-time interface verification.
var _ gutenfreq.BookService = (*BookService)(nil)

// BookService implements gutenfreq.BookService using SQLite.
type BookService struct {
	db *DB
}

// NewBookService creates a new BookService.
func NewBookService(db *DB) *BookService {
	return &BookService{db: db}
}

// FindBookByTitle retrieves a book by title. The title column carries a
// NOCASE collation, so the comparison is case-insensitive.
func (s *BookService) FindBookByTitle(ctx context.Context, title string) (*gutenfreq.Book, error) {
	var book gutenfreq.Book
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, source_url, text_hash, fetched_at
		FROM books
		WHERE title = ?
	`, title).Scan(&book.ID, &book.Title, &book.SourceURL, &book.TextHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, gutenfreq.Errorf(gutenfreq.ENOTFOUND, "book %q not found", title)
	}
	if err != nil {
		return nil, gutenfreq.Errorf(gutenfreq.ESTORE, "find book: %s", err)
	}

	book.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// WordFrequencies returns the stored ranked word list for a book, ordered
// by count descending, word ascending.
func (s *BookService) WordFrequencies(ctx context.Context, bookID string) ([]gutenfreq.WordCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT word, count
		FROM word_frequencies
		WHERE book_id = ?
		ORDER BY count DESC, word ASC
	`, bookID)
	if err != nil {
		return nil, gutenfreq.Errorf(gutenfreq.ESTORE, "load word frequencies: %s", err)
	}
	defer rows.Close()

	var freqs []gutenfreq.WordCount
	for rows.Next() {
		var wc gutenfreq.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, gutenfreq.Errorf(gutenfreq.ESTORE, "scan word frequency: %s", err)
		}
		freqs = append(freqs, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, gutenfreq.Errorf(gutenfreq.ESTORE, "load word frequencies: %s", err)
	}

	return freqs, nil
}

// UpsertBook inserts the book or updates its source URL, text hash, and
// fetch time if a book with the same title exists, then replaces the book's
// entire word list with freqs. Both writes happen in one transaction so a
// concurrent cache check sees either the old word list or the new one,
// never a torn mix.
func (s *BookService) UpsertBook(ctx context.Context, book *gutenfreq.Book, freqs []gutenfreq.WordCount) error {
	if err := book.Validate(); err != nil {
		return err
	}
	for _, wc := range freqs {
		if wc.Word == "" {
			return gutenfreq.Errorf(gutenfreq.EINVALID, "word required")
		}
		if wc.Count < 1 {
			return gutenfreq.Errorf(gutenfreq.EINVALID, "count for %q must be positive", wc.Word)
		}
	}

	book.FetchedAt = time.Now().UTC()

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		// On conflict the existing row keeps its id and title; the title
		// stored at first insert stays canonical even if a later fetch
		// derived different casing.
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO books (id, title, source_url, text_hash, fetched_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(title) DO UPDATE SET
				source_url = excluded.source_url,
				text_hash = excluded.text_hash,
				fetched_at = excluded.fetched_at
		`, uuid.New().String(), book.Title, book.SourceURL, book.TextHash,
			book.FetchedAt.Format(time.RFC3339)); err != nil {
			return err
		}

		var id string
		if err := tx.QueryRowContext(ctx, `
			SELECT id FROM books WHERE title = ?
		`, book.Title).Scan(&id); err != nil {
			return err
		}
		book.ID = id

		if _, err := tx.ExecContext(ctx, `
			DELETE FROM word_frequencies WHERE book_id = ?
		`, id); err != nil {
			return err
		}

		for _, wc := range freqs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO word_frequencies (book_id, word, count)
				VALUES (?, ?, ?)
			`, id, wc.Word, wc.Count); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return gutenfreq.Errorf(gutenfreq.ESTORE, "upsert book %q: %s", book.Title, err)
	}

	return nil
}

// FindBooks retrieves books matching the filter, most recently fetched
// first.
func (s *BookService) FindBooks(ctx context.Context, filter gutenfreq.BookFilter) ([]*gutenfreq.Book, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, source_url, text_hash, fetched_at FROM books WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY fetched_at DESC, title ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, gutenfreq.Errorf(gutenfreq.ESTORE, "find books: %s", err)
	}
	defer rows.Close()

	var books []*gutenfreq.Book
	for rows.Next() {
		var book gutenfreq.Book
		var fetchedAt string

		if err := rows.Scan(&book.ID, &book.Title, &book.SourceURL, &book.TextHash, &fetchedAt); err != nil {
			return nil, gutenfreq.Errorf(gutenfreq.ESTORE, "scan book: %s", err)
		}

		book.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		return nil, gutenfreq.Errorf(gutenfreq.ESTORE, "find books: %s", err)
	}
	return books, nil
}

// DeleteBook permanently removes a book. Its word frequency rows cascade.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return gutenfreq.Errorf(gutenfreq.ESTORE, "delete book: %s", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return gutenfreq.Errorf(gutenfreq.ESTORE, "delete book: %s", err)
	}
	if n == 0 {
		return gutenfreq.Errorf(gutenfreq.ENOTFOUND, "book not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp column.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
