// Package goquery provides a DOM-backed implementation of
// htmlgrep.Engine. It parses the document into a real tree, so it
// handles markup the pattern-matching core gives up on (void elements,
// unterminated tags) and accepts the full CSS selector language. The
// trade-off is the parse cost and the parser's normalization of the
// markup: returned spans are re-serialized, not substrings of the
// input.
package goquery

import (
	"strings"

	"github.com/63kitsune/htmlgrep"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Ensure Engine implements htmlgrep.Engine at compile time.
var _ htmlgrep.Engine = (*Engine)(nil)

// Engine evaluates CSS selectors against a parsed DOM.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// QueryAll returns the outer HTML of every element matching the
// selector, in document order. Invalid selectors return EINVALID.
func (e *Engine) QueryAll(html, selector string) ([]string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, htmlgrep.Errorf(htmlgrep.EINVALID, "invalid selector %q: %v", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, htmlgrep.Errorf(htmlgrep.EINVALID, "failed to parse HTML: %v", err)
	}

	var elements []string
	var renderErr error
	doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		if renderErr != nil {
			return
		}
		outer, err := goquery.OuterHtml(sel)
		if err != nil {
			renderErr = err
			return
		}
		elements = append(elements, outer)
	})
	if renderErr != nil {
		return nil, renderErr
	}

	return elements, nil
}
