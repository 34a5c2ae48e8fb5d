package mock

import "github.com/63kitsune/htmlgrep"

var _ htmlgrep.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmlgrep.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*htmlgrep.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*htmlgrep.ExtractResult, error) {
	return e.ExtractFn(html)
}
