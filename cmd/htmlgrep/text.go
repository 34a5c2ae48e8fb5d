package main

import (
	"fmt"

	"github.com/63kitsune/htmlgrep"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
		return err
	}

	if c.Readable {
		result, err := deps.Extractor.Extract(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
			return err
		}
		if result.Title != "" {
			fmt.Fprintf(deps.Stdout, "%s\n\n", result.Title)
		}
		fmt.Fprintln(deps.Stdout, result.ContentText)
		return nil
	}

	fmt.Fprintln(deps.Stdout, htmlgrep.GetText(html))
	return nil
}
