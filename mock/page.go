package mock

import (
	"context"

	"github.com/63kitsune/htmlgrep"
)

var _ htmlgrep.PageService = (*PageService)(nil)

// PageService is a mock implementation of htmlgrep.PageService.
type PageService struct {
	CreatePageFn   func(ctx context.Context, page *htmlgrep.Page) error
	FindPageByIDFn func(ctx context.Context, id string) (*htmlgrep.Page, error)
	FindPagesFn    func(ctx context.Context, filter htmlgrep.PageFilter) ([]*htmlgrep.Page, error)
	DeletePageFn   func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *htmlgrep.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*htmlgrep.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter htmlgrep.PageFilter) ([]*htmlgrep.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}
