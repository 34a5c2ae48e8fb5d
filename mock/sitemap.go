package mock

import (
	"context"

	"github.com/63kitsune/htmlgrep"
)

var _ htmlgrep.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of htmlgrep.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
