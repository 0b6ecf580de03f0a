package main

import (
	"fmt"

	"gutenfreq/lookup"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	result, err := deps.Lookup.ByLocation(deps.Ctx, c.URL, lookup.FetchOptions{StripHTML: c.StripHTML})
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Stored %q from URL.\n", result.Title)
	return renderWords(deps.Stdout, deps.Format, result.Title, result.Words)
}
