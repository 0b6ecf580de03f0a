package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"gutenfreq"
	"gutenfreq/gutendex"
	"gutenfreq/html2text"
	gfhttp "gutenfreq/http"
	"gutenfreq/lookup"
	gfslog "gutenfreq/slog"
	"gutenfreq/sqlite"
	"gutenfreq/textstat"
)

func main() {
	// Optional .env next to the working directory, for GUTENFREQ_DB.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the cache store.
	DB *sqlite.DB

	// Service for end-to-end testing.
	BookService gutenfreq.BookService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gutenfreq"),
		kong.Description("Word frequency tool for Project Gutenberg books."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gutenfreq --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GUTENFREQ_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BookService = sqlite.NewBookService(m.DB)

	var analyzerOpts []textstat.Option
	if cli.Stem {
		analyzerOpts = append(analyzerOpts, textstat.WithStemming())
	}

	books := m.BookService
	catalog := gutenfreq.CatalogResolver(gutendex.NewResolver())
	fetcher := gutenfreq.TextFetcher(gfhttp.NewFetcher())

	if cli.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
		books = gfslog.NewLoggingBookService(books, logger)
		catalog = gfslog.NewLoggingCatalogResolver(catalog, logger)
		fetcher = gfslog.NewLoggingTextFetcher(fetcher, logger)
	}

	deps.Books = books
	deps.Lookup = &lookup.Service{
		Books:     books,
		Catalog:   catalog,
		Fetcher:   fetcher,
		Converter: html2text.NewConverter(),
		Analyzer:  textstat.NewAnalyzer(analyzerOpts...),
		TopN:      cli.Top,
	}
	deps.Format = cli.Format
	deps.Top = cli.Top

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GUTENFREQ_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gutenfreq.db"
	}
	dir := filepath.Join(home, ".gutenfreq")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gutenfreq.db")
}
