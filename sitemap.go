package htmlgrep

import "context"

// SitemapService discovers page URLs for batch scraping.
type SitemapService interface {
	// DiscoverURLs finds all URLs advertised by a site's sitemap.
	// Returns an empty slice (not nil) if no sitemaps are found.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
