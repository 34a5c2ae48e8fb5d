package main

import (
	"context"
	"io"

	"github.com/63kitsune/htmlgrep"
	"github.com/63kitsune/htmlgrep/scrape"
	"github.com/63kitsune/htmlgrep/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Pages     htmlgrep.PageService
	Snippets  htmlgrep.SnippetService
	Sitemaps  htmlgrep.SitemapService
	Fetcher   htmlgrep.Fetcher
	Engine    htmlgrep.Engine
	Extractor htmlgrep.Extractor
	Converter htmlgrep.Converter
	Scraper   *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Query    QueryCmd    `cmd:"" help:"Fetch a page and print elements matching a selector"`
	Text     TextCmd     `cmd:"" help:"Fetch a page and print its text content"`
	Scrape   ScrapeCmd   `cmd:"" help:"Fetch many pages and store matching elements"`
	Pages    PagesCmd    `cmd:"" help:"List or delete stored pages"`
	Snippets SnippetsCmd `cmd:"" help:"List stored snippets for a page"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Selector string `arg:"" help:"Selector: tag, #id, .class, tag.class, or tag#id"`
	Engine   string `short:"e" default:"pattern" enum:"pattern,dom" help:"Matching engine"`
	Format   string `short:"F" default:"html" enum:"html,text,markdown" help:"Output format"`
	First    bool   `short:"1" help:"Print only the first match"`
	Attr     string `short:"a" help:"Print this attribute instead of the element"`
	Render   bool   `short:"r" help:"Render the page in a headless browser"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Readable bool   `help:"Extract main content only"`
	Render   bool   `short:"r" help:"Render the page in a headless browser"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Selector    string   `arg:"" help:"Selector to extract from every page"`
	URLs        []string `arg:"" optional:"" help:"Page URLs"`
	Sitemap     string   `short:"s" help:"Discover URLs from this site's sitemap"`
	Render      bool     `short:"r" help:"Render pages in a headless browser"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `default:"1" help:"Requests per second per domain"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	URL    string `help:"Filter by exact URL"`
	Limit  int    `default:"20" help:"Maximum pages to list"`
	Offset int    `help:"Offset into the result set"`
	Delete string `help:"Delete the page with this ID"`
}

// SnippetsCmd is the "snippets" subcommand.
type SnippetsCmd struct {
	PageID   string `arg:"" help:"Page ID"`
	Selector string `help:"Filter by the selector that produced the snippet"`
	HTML     bool   `help:"Print snippet HTML instead of text"`
}
