package main

import "fmt"

// Run executes the words command. It reads only the cache and never
// triggers a fetch.
func (c *WordsCmd) Run(deps *Dependencies) error {
	book, err := deps.Books.FindBookByTitle(deps.Ctx, c.Title)
	if err != nil {
		return reportError(deps, err)
	}

	freqs, err := deps.Books.WordFrequencies(deps.Ctx, book.ID)
	if err != nil {
		return reportError(deps, err)
	}
	if len(freqs) == 0 {
		fmt.Fprintf(deps.Stdout, "No words stored for %q. Use 'gutenfreq search' to fetch it.\n", book.Title)
		return nil
	}

	if deps.Top > 0 && len(freqs) > deps.Top {
		freqs = freqs[:deps.Top]
	}
	return renderWords(deps.Stdout, deps.Format, book.Title, freqs)
}
