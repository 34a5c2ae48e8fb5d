package mock

import "github.com/63kitsune/htmlgrep"

var _ htmlgrep.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmlgrep.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
