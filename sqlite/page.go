package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/63kitsune/htmlgrep"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ htmlgrep.PageService = (*PageService)(nil)

// PageService implements htmlgrep.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePage stores a new page, generating its ID, fetch timestamp, and
// content hash.
func (s *PageService) CreatePage(ctx context.Context, page *htmlgrep.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.HTML)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, title, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Title, page.HTML, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*htmlgrep.Page, error) {
	var page htmlgrep.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, html, content_hash, fetched_at
		FROM pages
		WHERE id = ?
	`, id).Scan(&page.ID, &page.URL, &page.Title, &page.HTML, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, htmlgrep.Errorf(htmlgrep.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// FindPages retrieves pages matching the filter, most recently fetched
// first.
func (s *PageService) FindPages(ctx context.Context, filter htmlgrep.PageFilter) ([]*htmlgrep.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, html, content_hash, fetched_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*htmlgrep.Page
	for rows.Next() {
		var page htmlgrep.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Title, &page.HTML, &page.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePage permanently removes a page; its snippets cascade.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return htmlgrep.Errorf(htmlgrep.ENOTFOUND, "page not found")
	}

	return nil
}
