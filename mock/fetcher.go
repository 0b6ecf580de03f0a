package mock

import (
	"context"

	"gutenfreq"
)

var _ gutenfreq.TextFetcher = (*TextFetcher)(nil)

// TextFetcher is a mock implementation of gutenfreq.TextFetcher.
type TextFetcher struct {
	FetchTextFn func(ctx context.Context, url string) (string, error)
}

func (f *TextFetcher) FetchText(ctx context.Context, url string) (string, error) {
	return f.FetchTextFn(ctx, url)
}

var _ gutenfreq.TextConverter = (*TextConverter)(nil)

// TextConverter is a mock implementation of gutenfreq.TextConverter.
type TextConverter struct {
	ConvertFn func(s string) (string, error)
}

func (c *TextConverter) Convert(s string) (string, error) {
	return c.ConvertFn(s)
}
