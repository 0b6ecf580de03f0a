// Package mock provides hand-rolled mocks for the gutenfreq interfaces.
package mock

import (
	"context"

	"gutenfreq"
)

var _ gutenfreq.BookService = (*BookService)(nil)

// BookService is a mock implementation of gutenfreq.BookService.
type BookService struct {
	FindBookByTitleFn func(ctx context.Context, title string) (*gutenfreq.Book, error)
	WordFrequenciesFn func(ctx context.Context, bookID string) ([]gutenfreq.WordCount, error)
	UpsertBookFn      func(ctx context.Context, book *gutenfreq.Book, freqs []gutenfreq.WordCount) error
	FindBooksFn       func(ctx context.Context, filter gutenfreq.BookFilter) ([]*gutenfreq.Book, error)
	DeleteBookFn      func(ctx context.Context, id string) error
}

func (s *BookService) FindBookByTitle(ctx context.Context, title string) (*gutenfreq.Book, error) {
	return s.FindBookByTitleFn(ctx, title)
}

func (s *BookService) WordFrequencies(ctx context.Context, bookID string) ([]gutenfreq.WordCount, error) {
	return s.WordFrequenciesFn(ctx, bookID)
}

func (s *BookService) UpsertBook(ctx context.Context, book *gutenfreq.Book, freqs []gutenfreq.WordCount) error {
	return s.UpsertBookFn(ctx, book, freqs)
}

func (s *BookService) FindBooks(ctx context.Context, filter gutenfreq.BookFilter) ([]*gutenfreq.Book, error) {
	return s.FindBooksFn(ctx, filter)
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	return s.DeleteBookFn(ctx, id)
}
