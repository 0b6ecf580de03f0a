package main

import (
	"fmt"

	"gutenfreq"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return gutenfreq.Errorf(gutenfreq.EINVALID, "use --force to confirm deletion")
	}

	book, err := deps.Books.FindBookByTitle(deps.Ctx, c.Title)
	if err != nil {
		return reportError(deps, err)
	}

	if err := deps.Books.DeleteBook(deps.Ctx, book.ID); err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", book.Title)
	return nil
}
