package main

import (
	"fmt"

	"github.com/63kitsune/htmlgrep"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if _, ok := htmlgrep.ParseSelector(c.Selector); !ok {
		fmt.Fprintf(deps.Stderr, "error: invalid selector %q\n", c.Selector)
		return htmlgrep.Errorf(htmlgrep.EINVALID, "invalid selector %q", c.Selector)
	}

	urls := c.URLs
	if c.Sitemap != "" {
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
			return err
		}
		urls = append(urls, discovered...)
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs to scrape. Pass URLs or --sitemap.")
		return htmlgrep.Errorf(htmlgrep.EINVALID, "no URLs to scrape")
	}

	result, err := deps.Scraper.Run(deps.Ctx, urls, c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d pages (%d skipped, %d failed), stored %d snippets.\n",
		result.Fetched, result.Skipped, result.Failed, result.Snippets)

	return nil
}
