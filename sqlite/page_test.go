package sqlite_test

import (
	"context"
	"testing"

	"github.com/63kitsune/htmlgrep"
	"github.com/63kitsune/htmlgrep/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPage(t *testing.T, db *sqlite.DB, url string) *htmlgrep.Page {
	t.Helper()
	svc := sqlite.NewPageService(db)
	page := &htmlgrep.Page{
		URL:   url,
		Title: "Test Page",
		HTML:  `<html><body><div class="item">x</div></body></html>`,
	}
	require.NoError(t, svc.CreatePage(context.Background(), page))
	return page
}

func TestPageService_CreatePage(t *testing.T) {
	t.Parallel()

	t.Run("creates page with generated ID, hash, and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		page := &htmlgrep.Page{
			URL:  "https://example.com/a",
			HTML: `<html><body>hi</body></html>`,
		}

		err := svc.CreatePage(ctx, page)
		require.NoError(t, err)

		assert.NotEmpty(t, page.ID, "ID should be generated")
		assert.NotEmpty(t, page.ContentHash, "ContentHash should be generated")
		assert.False(t, page.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		err := svc.CreatePage(context.Background(), &htmlgrep.Page{}) // missing URL
		require.Error(t, err)
		assert.Equal(t, htmlgrep.EINVALID, htmlgrep.ErrorCode(err))
	})

	t.Run("identical HTML yields identical hashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		a := createTestPage(t, db, "https://example.com/a")
		b := createTestPage(t, db, "https://example.com/b")

		assert.Equal(t, a.ContentHash, b.ContentHash)
	})
}

func TestPageService_FindPageByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the page when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		page := createTestPage(t, db, "https://example.com/a")
		svc := sqlite.NewPageService(db)

		found, err := svc.FindPageByID(context.Background(), page.ID)
		require.NoError(t, err)

		assert.Equal(t, page.ID, found.ID)
		assert.Equal(t, page.URL, found.URL)
		assert.Equal(t, page.HTML, found.HTML)
	})

	t.Run("returns ENOTFOUND for an unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		_, err := svc.FindPageByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, htmlgrep.ENOTFOUND, htmlgrep.ErrorCode(err))
	})
}

func TestPageService_FindPages(t *testing.T) {
	t.Parallel()

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createTestPage(t, db, "https://example.com/a")
		createTestPage(t, db, "https://example.com/b")
		svc := sqlite.NewPageService(db)

		url := "https://example.com/b"
		pages, err := svc.FindPages(context.Background(), htmlgrep.PageFilter{URL: &url})
		require.NoError(t, err)

		require.Len(t, pages, 1)
		assert.Equal(t, url, pages[0].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		for _, u := range []string{"https://x/1", "https://x/2", "https://x/3"} {
			createTestPage(t, db, u)
		}
		svc := sqlite.NewPageService(db)

		pages, err := svc.FindPages(context.Background(), htmlgrep.PageFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, pages, 2)

		pages, err = svc.FindPages(context.Background(), htmlgrep.PageFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, pages, 1)
	})
}

func TestPageService_DeletePage(t *testing.T) {
	t.Parallel()

	t.Run("deletes the page and cascades to snippets", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		page := createTestPage(t, db, "https://example.com/a")
		pages := sqlite.NewPageService(db)
		snippets := sqlite.NewSnippetService(db)
		ctx := context.Background()

		require.NoError(t, snippets.CreateSnippet(ctx, &htmlgrep.Snippet{
			PageID:   page.ID,
			Selector: ".item",
			HTML:     `<div class="item">x</div>`,
			Text:     "x",
		}))

		require.NoError(t, pages.DeletePage(ctx, page.ID))

		_, err := pages.FindPageByID(ctx, page.ID)
		assert.Equal(t, htmlgrep.ENOTFOUND, htmlgrep.ErrorCode(err))

		remaining, err := snippets.FindSnippets(ctx, htmlgrep.SnippetFilter{PageID: &page.ID})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for an unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		err := svc.DeletePage(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, htmlgrep.ENOTFOUND, htmlgrep.ErrorCode(err))
	})
}
