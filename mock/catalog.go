package mock

import (
	"context"

	"gutenfreq"
)

var _ gutenfreq.CatalogResolver = (*CatalogResolver)(nil)

// CatalogResolver is a mock implementation of gutenfreq.CatalogResolver.
type CatalogResolver struct {
	ResolveTitleFn func(ctx context.Context, title string) (string, error)
}

func (r *CatalogResolver) ResolveTitle(ctx context.Context, title string) (string, error) {
	return r.ResolveTitleFn(ctx, title)
}
