package main

import (
	"fmt"

	"github.com/63kitsune/htmlgrep"
)

// Run executes the snippets command.
func (c *SnippetsCmd) Run(deps *Dependencies) error {
	if _, err := deps.Pages.FindPageByID(deps.Ctx, c.PageID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
		return err
	}

	filter := htmlgrep.SnippetFilter{PageID: &c.PageID}
	if c.Selector != "" {
		filter.Selector = &c.Selector
	}

	snippets, err := deps.Snippets.FindSnippets(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
		return err
	}

	if len(snippets) == 0 {
		fmt.Fprintln(deps.Stdout, "No snippets for this page.")
		return nil
	}

	for _, s := range snippets {
		if c.HTML {
			fmt.Fprintf(deps.Stdout, "%d. %s\n", s.Position, s.HTML)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%d. %s\n", s.Position, s.Text)
	}

	return nil
}
