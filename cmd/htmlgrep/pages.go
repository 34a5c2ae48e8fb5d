package main

import (
	"fmt"
	"time"

	"github.com/63kitsune/htmlgrep"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	if c.Delete != "" {
		if err := deps.Pages.DeletePage(deps.Ctx, c.Delete); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted page %s.\n", c.Delete)
		return nil
	}

	filter := htmlgrep.PageFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages stored. Use 'htmlgrep scrape' to fetch some.")
		return nil
	}

	for _, p := range pages {
		title := p.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", p.ID, p.FetchedAt.Format(time.RFC3339), title, p.URL)
	}

	return nil
}
