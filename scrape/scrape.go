// Package scrape orchestrates batch extraction: it fetches a list of
// URLs with bounded concurrency, runs one selector against each page,
// and stores the pages and their matched element spans.
package scrape

import (
	"context"
	"net/url"

	"github.com/63kitsune/htmlgrep"
	"github.com/63kitsune/htmlgrep/bloom"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds the fetch worker pool when the caller
// doesn't set one.
const defaultConcurrency = 10

// Scraper coordinates fetching, extraction, and storage for a batch of
// URLs. All fields except Limiter and Seen are required.
type Scraper struct {
	Fetcher     htmlgrep.Fetcher
	Engine      htmlgrep.Engine
	Pages       htmlgrep.PageService
	Snippets    htmlgrep.SnippetService
	Limiter     htmlgrep.DomainLimiter
	Seen        *bloom.Filter
	Concurrency int
}

// Result holds the outcome of a batch scrape.
type Result struct {
	Fetched  int
	Skipped  int
	Failed   int
	Snippets int
}

// pageResult holds the outcome of fetching a single URL.
type pageResult struct {
	url  string
	html string
	err  error
}

// Run fetches every URL, extracts the selector's matches from each
// page, and stores pages and snippets in document order. A URL that
// fails to fetch, query, or store increments Failed and never aborts
// the batch, mirroring the core's skip-on-failure policy. URLs already
// present in Seen are skipped.
func (s *Scraper) Run(ctx context.Context, urls []string, selector string) (*Result, error) {
	var result Result

	// Deduplicate up front: the Bloom filter is not safe for
	// concurrent use, and filtering here keeps document order stable.
	pending := make([]string, 0, len(urls))
	for _, u := range urls {
		if s.Seen != nil {
			if s.Seen.Seen(u) {
				result.Skipped++
				continue
			}
			s.Seen.Add(u)
		}
		pending = append(pending, u)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]pageResult, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range pending {
		g.Go(func() error {
			results[i] = s.fetchOne(gctx, u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Store sequentially so snippet positions keep document order and
	// the storage layer sees no concurrent writers.
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}

		spans, err := s.Engine.QueryAll(r.html, selector)
		if err != nil {
			result.Failed++
			continue
		}

		page := &htmlgrep.Page{
			URL:   r.url,
			Title: pageTitle(r.html),
			HTML:  r.html,
		}
		if err := s.Pages.CreatePage(ctx, page); err != nil {
			result.Failed++
			continue
		}

		for i, span := range spans {
			snippet := &htmlgrep.Snippet{
				PageID:   page.ID,
				Selector: selector,
				Position: i,
				HTML:     span,
				Text:     htmlgrep.GetText(span),
			}
			if err := s.Snippets.CreateSnippet(ctx, snippet); err != nil {
				result.Failed++
				continue
			}
			result.Snippets++
		}

		result.Fetched++
	}

	return &result, nil
}

// fetchOne rate-limits and fetches a single URL.
func (s *Scraper) fetchOne(ctx context.Context, rawURL string) pageResult {
	result := pageResult{url: rawURL}

	if s.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	result.html, result.err = s.Fetcher.Fetch(ctx, rawURL)
	return result
}

// pageTitle extracts the page title with the scanning core itself.
func pageTitle(html string) string {
	titles := htmlgrep.GetByTag(html, "title")
	if len(titles) == 0 {
		return ""
	}
	return htmlgrep.GetText(titles[0])
}
