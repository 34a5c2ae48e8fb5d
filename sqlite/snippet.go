package sqlite

import (
	"context"
	"strings"

	"github.com/63kitsune/htmlgrep"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ htmlgrep.SnippetService = (*SnippetService)(nil)

// SnippetService implements htmlgrep.SnippetService using SQLite.
type SnippetService struct {
	db *DB
}

// NewSnippetService creates a new SnippetService.
func NewSnippetService(db *DB) *SnippetService {
	return &SnippetService{db: db}
}

// CreateSnippet stores a new snippet, generating its ID.
func (s *SnippetService) CreateSnippet(ctx context.Context, snippet *htmlgrep.Snippet) error {
	if err := snippet.Validate(); err != nil {
		return err
	}

	snippet.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snippets (id, page_id, selector, position, html, text_content)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snippet.ID, snippet.PageID, snippet.Selector, snippet.Position, snippet.HTML, snippet.Text)

	return err
}

// FindSnippets retrieves snippets matching the filter, ordered by
// position so results keep the document order of their extraction.
func (s *SnippetService) FindSnippets(ctx context.Context, filter htmlgrep.SnippetFilter) ([]*htmlgrep.Snippet, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, page_id, selector, position, html, text_content FROM snippets WHERE 1=1")

	if filter.PageID != nil {
		query.WriteString(" AND page_id = ?")
		args = append(args, *filter.PageID)
	}
	if filter.Selector != nil {
		query.WriteString(" AND selector = ?")
		args = append(args, *filter.Selector)
	}

	query.WriteString(" ORDER BY page_id, position ASC")

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

	var snippets []*htmlgrep.Snippet
	for rows.Next() {
		var snippet htmlgrep.Snippet
		if err := rows.Scan(&snippet.ID, &snippet.PageID, &snippet.Selector,
			&snippet.Position, &snippet.HTML, &snippet.Text); err != nil {
			return nil, err
		}
		snippets = append(snippets, &snippet)
	}

	return snippets, rows.Err()
}
