package slog

import (
	"context"
	"log/slog"
	"time"

	"gutenfreq"
)

// Ensure LoggingTextFetcher implements gutenfreq.TextFetcher.
var _ gutenfreq.TextFetcher = (*LoggingTextFetcher)(nil)

// LoggingTextFetcher wraps a TextFetcher with structured logging.
type LoggingTextFetcher struct {
	next   gutenfreq.TextFetcher
	logger *slog.Logger
}

// NewLoggingTextFetcher creates a new LoggingTextFetcher.
func NewLoggingTextFetcher(next gutenfreq.TextFetcher, logger *slog.Logger) *LoggingTextFetcher {
	return &LoggingTextFetcher{next: next, logger: logger}
}

// FetchText delegates to the wrapped fetcher and logs the operation.
func (f *LoggingTextFetcher) FetchText(ctx context.Context, url string) (text string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("text fetch",
			"url", url,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchText(ctx, url)
}
