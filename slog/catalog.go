// Package slog provides logging decorators for the gutenfreq service
// interfaces using log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"gutenfreq"
)

// Ensure LoggingCatalogResolver implements gutenfreq.CatalogResolver.
var _ gutenfreq.CatalogResolver = (*LoggingCatalogResolver)(nil)

// LoggingCatalogResolver wraps a CatalogResolver with structured logging.
type LoggingCatalogResolver struct {
	next   gutenfreq.CatalogResolver
	logger *slog.Logger
}

// NewLoggingCatalogResolver creates a new LoggingCatalogResolver.
func NewLoggingCatalogResolver(next gutenfreq.CatalogResolver, logger *slog.Logger) *LoggingCatalogResolver {
	return &LoggingCatalogResolver{next: next, logger: logger}
}

// ResolveTitle delegates to the wrapped resolver and logs the operation.
func (r *LoggingCatalogResolver) ResolveTitle(ctx context.Context, title string) (location string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("catalog resolve",
			"title", title,
			"location", location,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveTitle(ctx, title)
}
