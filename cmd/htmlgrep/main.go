package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/63kitsune/htmlgrep"
	"github.com/63kitsune/htmlgrep/bloom"
	"github.com/63kitsune/htmlgrep/goquery"
	grephttp "github.com/63kitsune/htmlgrep/http"
	"github.com/63kitsune/htmlgrep/htmltomarkdown"
	"github.com/63kitsune/htmlgrep/rod"
	"github.com/63kitsune/htmlgrep/scrape"
	"github.com/63kitsune/htmlgrep/sqlite"
	"github.com/63kitsune/htmlgrep/trafilatura"
	"github.com/alecthomas/kong"
)

func main() {
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService    htmlgrep.PageService
	SnippetService htmlgrep.SnippetService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlgrep"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'htmlgrep --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HTMLGREP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PageService = sqlite.NewPageService(m.DB)
	m.SnippetService = sqlite.NewSnippetService(m.DB)
	deps.DB = m.DB
	deps.Pages = m.PageService
	deps.Snippets = m.SnippetService
	deps.Sitemaps = grephttp.NewSitemapService(nil)

	// Wire the fetcher for commands that reach the network
	render := (cmd == "query" && cli.Query.Render) ||
		(cmd == "text" && cli.Text.Render) ||
		(cmd == "scrape" && cli.Scrape.Render)
	if cmd == "query" || cmd == "text" || cmd == "scrape" {
		if render {
			fetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			deps.Fetcher = fetcher
		} else {
			deps.Fetcher = grephttp.NewFetcher()
		}
		defer deps.Fetcher.Close()
	}

	// Wire command-specific dependencies based on command
	switch cmd {
	case "query":
		if cli.Query.Engine == "dom" {
			deps.Engine = goquery.NewEngine()
		} else {
			deps.Engine = htmlgrep.PatternEngine{}
		}
		deps.Converter = htmltomarkdown.NewConverter()
	case "text":
		deps.Extractor = trafilatura.NewExtractor()
	case "scrape":
		deps.Scraper = &scrape.Scraper{
			Fetcher:     deps.Fetcher,
			Engine:      htmlgrep.PatternEngine{},
			Pages:       deps.Pages,
			Snippets:    deps.Snippets,
			Limiter:     scrape.NewDomainLimiter(cli.Scrape.RPS),
			Seen:        bloom.NewFilter(seenFilterSize, seenFilterFPRate),
			Concurrency: cli.Scrape.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// Bloom filter sizing for URL deduplication within a single scrape run.
const (
	seenFilterSize   = 100_000
	seenFilterFPRate = 0.01
)

func defaultDBPath() string {
	if path := os.Getenv("HTMLGREP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "htmlgrep.db"
	}
	dir := filepath.Join(home, ".htmlgrep")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "htmlgrep.db")
}
