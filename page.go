package htmlgrep

import (
	"context"
	"time"
)

// Page represents one fetched HTML document.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// Snippet represents one element span extracted from a page by a
// selector, with its document-order position within that extraction.
type Snippet struct {
	ID       string `json:"id"`
	PageID   string `json:"pageId"`
	Selector string `json:"selector"`
	Position int    `json:"position"`
	HTML     string `json:"html"`
	Text     string `json:"text"`
}

// Validate returns an error if the snippet contains invalid fields.
func (s *Snippet) Validate() error {
	if s.PageID == "" {
		return Errorf(EINVALID, "snippet page ID required")
	}
	if s.Selector == "" {
		return Errorf(EINVALID, "snippet selector required")
	}
	return nil
}

// PageService represents a service for managing fetched pages.
type PageService interface {
	// CreatePage stores a new page.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page and its snippets.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SnippetService represents a service for managing extracted snippets.
type SnippetService interface {
	// CreateSnippet stores a new snippet.
	CreateSnippet(ctx context.Context, snippet *Snippet) error

	// FindSnippets retrieves snippets matching the filter, ordered by
	// position within each page.
	FindSnippets(ctx context.Context, filter SnippetFilter) ([]*Snippet, error)
}

// SnippetFilter represents a filter for FindSnippets.
type SnippetFilter struct {
	PageID   *string `json:"pageId"`
	Selector *string `json:"selector"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
