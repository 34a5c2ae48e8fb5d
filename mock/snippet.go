package mock

import (
	"context"

	"github.com/63kitsune/htmlgrep"
)

var _ htmlgrep.SnippetService = (*SnippetService)(nil)

// SnippetService is a mock implementation of htmlgrep.SnippetService.
type SnippetService struct {
	CreateSnippetFn func(ctx context.Context, snippet *htmlgrep.Snippet) error
	FindSnippetsFn  func(ctx context.Context, filter htmlgrep.SnippetFilter) ([]*htmlgrep.Snippet, error)
}

func (s *SnippetService) CreateSnippet(ctx context.Context, snippet *htmlgrep.Snippet) error {
	return s.CreateSnippetFn(ctx, snippet)
}

func (s *SnippetService) FindSnippets(ctx context.Context, filter htmlgrep.SnippetFilter) ([]*htmlgrep.Snippet, error) {
	return s.FindSnippetsFn(ctx, filter)
}
