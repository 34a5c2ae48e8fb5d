package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/63kitsune/htmlgrep"
	main "github.com/63kitsune/htmlgrep/cmd/htmlgrep"
	"github.com/63kitsune/htmlgrep/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists pages with ID, time, title, and URL", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			FindPagesFn: func(_ context.Context, _ htmlgrep.PageFilter) ([]*htmlgrep.Page, error) {
				return []*htmlgrep.Page{
					{
						ID:        "page-123",
						URL:       "https://example.com/a",
						Title:     "Example A",
						FetchedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "page-456",
						URL:       "https://example.com/b",
						FetchedAt: time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pages,
		}

		cmd := &main.PagesCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "page-123")
		assert.Contains(t, out, "Example A")
		assert.Contains(t, out, "https://example.com/a")
		assert.Contains(t, out, "(untitled)")
		assert.Empty(t, stderr.String())
	})

	t.Run("passes the URL filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter htmlgrep.PageFilter
		pages := &mock.PageService{
			FindPagesFn: func(_ context.Context, filter htmlgrep.PageFilter) ([]*htmlgrep.Page, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pages:  pages,
		}

		cmd := &main.PagesCmd{URL: "https://example.com/a", Limit: 5, Offset: 10}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://example.com/a", *gotFilter.URL)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Equal(t, 10, gotFilter.Offset)
		assert.Contains(t, stdout.String(), "No pages stored")
	})

	t.Run("deletes a page with --delete", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		pages := &mock.PageService{
			DeletePageFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pages:  pages,
		}

		cmd := &main.PagesCmd{Delete: "page-123"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "page-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted page page-123")
	})

	t.Run("reports delete of a missing page", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			DeletePageFn: func(_ context.Context, id string) error {
				return htmlgrep.Errorf(htmlgrep.ENOTFOUND, "page not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Pages:  pages,
		}

		cmd := &main.PagesCmd{Delete: "missing"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, htmlgrep.ENOTFOUND, htmlgrep.ErrorCode(err))
		assert.Contains(t, stderr.String(), "page not found")
	})
}
