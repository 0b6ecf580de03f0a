package slog

import (
	"context"
	"log/slog"
	"time"

	"gutenfreq"
)

// Ensure LoggingBookService implements gutenfreq.BookService.
var _ gutenfreq.BookService = (*LoggingBookService)(nil)

// LoggingBookService wraps a BookService with debug logging.
type LoggingBookService struct {
	next   gutenfreq.BookService
	logger *slog.Logger
}

// NewLoggingBookService creates a new LoggingBookService.
func NewLoggingBookService(next gutenfreq.BookService, logger *slog.Logger) *LoggingBookService {
	return &LoggingBookService{next: next, logger: logger}
}

// FindBookByTitle delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) FindBookByTitle(ctx context.Context, title string) (book *gutenfreq.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find book",
			"title", title,
			"hit", err == nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindBookByTitle(ctx, title)
}

// WordFrequencies delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) WordFrequencies(ctx context.Context, bookID string) (freqs []gutenfreq.WordCount, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load word frequencies",
			"bookID", bookID,
			"count", len(freqs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WordFrequencies(ctx, bookID)
}

// UpsertBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) UpsertBook(ctx context.Context, book *gutenfreq.Book, freqs []gutenfreq.WordCount) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("upsert book",
			"title", book.Title,
			"words", len(freqs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertBook(ctx, book, freqs)
}

// FindBooks delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) FindBooks(ctx context.Context, filter gutenfreq.BookFilter) (books []*gutenfreq.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find books",
			"count", len(books),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBooks(ctx, filter)
}

// DeleteBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) DeleteBook(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete book",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteBook(ctx, id)
}
