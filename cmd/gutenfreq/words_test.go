package main_test

import (
	"context"
	"testing"

	"gutenfreq"
	main "gutenfreq/cmd/gutenfreq"
	"gutenfreq/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints cached words without fetching", func(t *testing.T) {
		t.Parallel()

		books := &mock.BookService{
			FindBookByTitleFn: func(_ context.Context, _ string) (*gutenfreq.Book, error) {
				return &gutenfreq.Book{ID: "book-1", Title: "Moby Dick"}, nil
			},
			WordFrequenciesFn: func(_ context.Context, bookID string) ([]gutenfreq.WordCount, error) {
				assert.Equal(t, "book-1", bookID)
				return []gutenfreq.WordCount{
					{Word: "whale", Count: 9},
					{Word: "sea", Count: 3},
				}, nil
			},
		}
		deps, stdout, _ := testDeps(books, nil, nil)

		cmd := &main.WordsCmd{Title: "moby dick"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "whale")
		assert.Contains(t, stdout.String(), "9")
	})

	t.Run("truncates output to the top flag", func(t *testing.T) {
		t.Parallel()

		books := &mock.BookService{
			FindBookByTitleFn: func(_ context.Context, _ string) (*gutenfreq.Book, error) {
				return &gutenfreq.Book{ID: "book-1", Title: "Moby Dick"}, nil
			},
			WordFrequenciesFn: func(_ context.Context, _ string) ([]gutenfreq.WordCount, error) {
				return []gutenfreq.WordCount{
					{Word: "whale", Count: 9},
					{Word: "sea", Count: 3},
					{Word: "ship", Count: 1},
				}, nil
			},
		}
		deps, stdout, _ := testDeps(books, nil, nil)
		deps.Top = 2

		cmd := &main.WordsCmd{Title: "moby dick"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "whale")
		assert.Contains(t, stdout.String(), "sea")
		assert.NotContains(t, stdout.String(), "ship")
	})

	t.Run("unknown title prints informational message", func(t *testing.T) {
		t.Parallel()

		books := &mock.BookService{
			FindBookByTitleFn: func(_ context.Context, title string) (*gutenfreq.Book, error) {
				return nil, gutenfreq.Errorf(gutenfreq.ENOTFOUND, "book %q not found", title)
			},
		}
		deps, stdout, _ := testDeps(books, nil, nil)

		cmd := &main.WordsCmd{Title: "no such book"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Book was not found.")
	})

	t.Run("book with no stored words prints hint", func(t *testing.T) {
		t.Parallel()

		books := &mock.BookService{
			FindBookByTitleFn: func(_ context.Context, _ string) (*gutenfreq.Book, error) {
				return &gutenfreq.Book{ID: "book-1", Title: "Blank Pages"}, nil
			},
			WordFrequenciesFn: func(_ context.Context, _ string) ([]gutenfreq.WordCount, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := testDeps(books, nil, nil)

		cmd := &main.WordsCmd{Title: "blank pages"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), `No words stored for "Blank Pages"`)
	})
}
