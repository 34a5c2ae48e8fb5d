package main

import (
	"fmt"

	"github.com/63kitsune/htmlgrep"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
		return err
	}

	matches, err := deps.Engine.QueryAll(html, c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no elements match %q\n", c.Selector)
		return htmlgrep.Errorf(htmlgrep.ENOTFOUND, "no elements match %q", c.Selector)
	}

	if c.First {
		matches = matches[:1]
	}

	if c.Attr != "" {
		// One line per match; absent attributes print as blank lines so
		// output stays aligned with the match list.
		for _, value := range htmlgrep.GetAttrs(matches, c.Attr) {
			if value == nil {
				fmt.Fprintln(deps.Stdout)
				continue
			}
			fmt.Fprintln(deps.Stdout, *value)
		}
		return nil
	}

	for _, match := range matches {
		switch c.Format {
		case "text":
			fmt.Fprintln(deps.Stdout, htmlgrep.GetText(match))
		case "markdown":
			md, err := deps.Converter.Convert(match)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrep.ErrorMessage(err))
				return err
			}
			fmt.Fprintln(deps.Stdout, md)
		default:
			fmt.Fprintln(deps.Stdout, match)
		}
	}

	return nil
}
