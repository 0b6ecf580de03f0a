package main

import (
	"fmt"

	"gutenfreq"
	"gutenfreq/lookup"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if len(c.Titles) == 1 {
		result, err := deps.Lookup.ByTitle(deps.Ctx, c.Titles[0])
		if err != nil {
			return reportError(deps, err)
		}
		return printLookupResult(deps, result)
	}

	// Several titles: rate limit the upstream hosts and fetch concurrently.
	if c.RPS > 0 {
		deps.Lookup.Limiter = lookup.NewDomainLimiter(c.RPS)
	}

	progress := func(event lookup.ProgressEvent) {
		switch event.Type {
		case lookup.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Looking up %d titles\n", event.Total)
		case lookup.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %q: %s\n", event.Title, gutenfreq.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Lookup.Batch(deps.Ctx, c.Titles, c.Concurrency, progress)
	if err != nil {
		return reportError(deps, err)
	}

	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			continue
		}
		fmt.Fprintln(deps.Stdout)
		if err := printLookupResult(deps, outcome.Result); err != nil {
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "\n%d stored, %d failed\n", result.Succeeded, result.Failed)

	return nil
}

// printLookupResult prints the status line and the ranked word list.
func printLookupResult(deps *Dependencies, result *lookup.Result) error {
	if result.FromCache {
		fmt.Fprintf(deps.Stdout, "Loaded %q from local cache.\n", result.Title)
	} else {
		fmt.Fprintf(deps.Stdout, "Retrieved %q from the web and stored it.\n", result.Title)
	}
	return renderWords(deps.Stdout, deps.Format, result.Title, result.Words)
}
