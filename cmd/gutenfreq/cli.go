package main

import (
	"context"
	"io"

	"gutenfreq"
	"gutenfreq/lookup"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Books  gutenfreq.BookService
	Lookup *lookup.Service
	Format string
	Top    int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `help:"Database path." placeholder:"PATH"`
	Format  string `help:"Output format." enum:"table,json,yaml" default:"table"`
	Top     int    `help:"Number of ranked words to show." default:"10"`
	Stem    bool   `help:"Collapse inflected word forms before counting."`
	Verbose bool   `short:"v" help:"Log service calls to stderr."`

	Search SearchCmd `cmd:"" help:"Look up books by title, from the local cache or the Gutenberg catalog"`
	Fetch  FetchCmd  `cmd:"" help:"Fetch a book directly from a URL and store it"`
	Words  WordsCmd  `cmd:"" help:"Show the cached ranked words for a book"`
	List   ListCmd   `cmd:"" help:"List cached books"`
	Delete DeleteCmd `cmd:"" help:"Delete a cached book"`
	Export ExportCmd `cmd:"" help:"Export all cached word frequencies to a Parquet file"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Titles      []string `arg:"" help:"Book titles to look up"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent lookup limit for multiple titles"`
	RPS         float64  `default:"2" help:"Per-domain requests per second for multiple titles"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL       string `arg:"" help:"URL of a plain-text book"`
	StripHTML bool   `name:"strip-html" help:"Strip HTML markup before analysis"`
}

// WordsCmd is the "words" subcommand.
type WordsCmd struct {
	Title string `arg:"" help:"Book title"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Title string `arg:"" help:"Book title"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `short:"o" default:"gutenfreq-export.parquet" help:"Output file path"`
}
