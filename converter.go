package htmlgrep

// Converter converts extracted HTML fragments to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
