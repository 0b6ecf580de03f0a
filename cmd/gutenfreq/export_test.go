package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"gutenfreq"
	main "gutenfreq/cmd/gutenfreq"
	"gutenfreq/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exportedRow mirrors the export schema for reading the file back.
type exportedRow struct {
	Title string `parquet:"title"`
	Word  string `parquet:"word"`
	Count int64  `parquet:"count"`
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes one row per stored word pair", func(t *testing.T) {
		t.Parallel()

		books := &mock.BookService{
			FindBooksFn: func(_ context.Context, _ gutenfreq.BookFilter) ([]*gutenfreq.Book, error) {
				return []*gutenfreq.Book{
					{ID: "book-1", Title: "Moby Dick"},
					{ID: "book-2", Title: "The Odyssey"},
				}, nil
			},
			WordFrequenciesFn: func(_ context.Context, bookID string) ([]gutenfreq.WordCount, error) {
				if bookID == "book-1" {
					return []gutenfreq.WordCount{
						{Word: "whale", Count: 9},
						{Word: "sea", Count: 3},
					}, nil
				}
				return []gutenfreq.WordCount{{Word: "odysseus", Count: 5}}, nil
			},
		}
		deps, stdout, _ := testDeps(books, nil, nil)

		output := filepath.Join(t.TempDir(), "export.parquet")
		cmd := &main.ExportCmd{Output: output}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Exported 3 rows")

		f, err := os.Open(output)
		require.NoError(t, err)
		defer f.Close()

		info, err := f.Stat()
		require.NoError(t, err)

		pf, err := parquet.OpenFile(f, info.Size())
		require.NoError(t, err)

		reader := parquet.NewGenericReader[exportedRow](pf)
		defer reader.Close()

		rows := make([]exportedRow, 3)
		n, err := reader.Read(rows)
		if err != nil {
			// io.EOF after the final row is expected.
			require.Equal(t, 3, n)
		}
		require.Equal(t, 3, n)
		assert.Equal(t, exportedRow{Title: "Moby Dick", Word: "whale", Count: 9}, rows[0])
	})

	t.Run("empty cache writes an empty file", func(t *testing.T) {
		t.Parallel()

		books := &mock.BookService{
			FindBooksFn: func(_ context.Context, _ gutenfreq.BookFilter) ([]*gutenfreq.Book, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := testDeps(books, nil, nil)

		output := filepath.Join(t.TempDir(), "export.parquet")
		cmd := &main.ExportCmd{Output: output}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Exported 0 rows")
		_, err := os.Stat(output)
		assert.NoError(t, err)
	})
}
