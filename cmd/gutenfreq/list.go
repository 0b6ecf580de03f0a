package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"gutenfreq"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	books, err := deps.Books.FindBooks(deps.Ctx, gutenfreq.BookFilter{})
	if err != nil {
		return reportError(deps, err)
	}

	if len(books) == 0 {
		fmt.Fprintln(deps.Stdout, "No books cached. Use 'gutenfreq search' to fetch one.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSOURCE\tFETCHED")
	for _, book := range books {
		fmt.Fprintf(tw, "%.8s\t%s\t%s\t%s\n",
			book.ID, book.Title, book.SourceURL, book.FetchedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
