package htmlgrep

// ExtractResult holds the readable main content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string

	// ContentText is the main content as plain text.
	ContentText string
}

// Extractor extracts readable main content from full HTML pages.
// This is a whole-page concern, distinct from the span-level GetText:
// implementations may use heuristics well beyond tag stripping.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
