package main

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"gutenfreq"
)

// exportRow is one (book, word) pair in the Parquet export.
type exportRow struct {
	Title string `parquet:"title"`
	Word  string `parquet:"word"`
	Count int64  `parquet:"count"`
}

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	books, err := deps.Books.FindBooks(deps.Ctx, gutenfreq.BookFilter{})
	if err != nil {
		return reportError(deps, err)
	}

	var rows []exportRow
	for _, book := range books {
		freqs, err := deps.Books.WordFrequencies(deps.Ctx, book.ID)
		if err != nil {
			return reportError(deps, err)
		}
		for _, wc := range freqs {
			rows = append(rows, exportRow{Title: book.Title, Word: wc.Word, Count: int64(wc.Count)})
		}
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return reportError(deps, fmt.Errorf("create %s: %w", c.Output, err))
	}

	writer := parquet.NewGenericWriter[exportRow](f)
	if _, err := writer.Write(rows); err != nil {
		_ = f.Close()
		return reportError(deps, fmt.Errorf("write %s: %w", c.Output, err))
	}
	if err := writer.Close(); err != nil {
		_ = f.Close()
		return reportError(deps, fmt.Errorf("finish %s: %w", c.Output, err))
	}
	if err := f.Close(); err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d rows to %s\n", len(rows), c.Output)
	return nil
}
