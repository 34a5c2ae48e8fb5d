package htmlgrep

// Engine evaluates a selector against an HTML document and returns the
// outer HTML of every matching element in document order.
type Engine interface {
	QueryAll(html, selector string) ([]string, error)
}

// Ensure PatternEngine implements Engine at compile time.
var _ Engine = (*PatternEngine)(nil)

// PatternEngine implements Engine with this package's scanning core.
// It never returns an error: unsupported selectors yield an empty
// result per the core's error model.
type PatternEngine struct{}

// QueryAll evaluates the selector via QuerySelectorAll.
func (PatternEngine) QueryAll(html, selector string) ([]string, error) {
	return QuerySelectorAll(html, selector), nil
}
