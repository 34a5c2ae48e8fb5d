package mock

import "github.com/63kitsune/htmlgrep"

var _ htmlgrep.Engine = (*Engine)(nil)

// Engine is a mock implementation of htmlgrep.Engine.
type Engine struct {
	QueryAllFn func(html, selector string) ([]string, error)
}

func (e *Engine) QueryAll(html, selector string) ([]string, error) {
	return e.QueryAllFn(html, selector)
}
