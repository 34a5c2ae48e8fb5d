package htmlgrep_test

import (
	"testing"

	"github.com/63kitsune/htmlgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAttr(t *testing.T) {
	t.Parallel()

	t.Run("returns the attribute value", func(t *testing.T) {
		t.Parallel()

		el := `<a class="link" href="/x">L</a>`

		v, ok := htmlgrep.GetAttr(el, "href")

		require.True(t, ok)
		assert.Equal(t, "/x", v)
	})

	t.Run("matches attribute names case-insensitively", func(t *testing.T) {
		t.Parallel()

		el := `<DIV CLASS="foo">text</DIV>`

		v, ok := htmlgrep.GetAttr(el, "class")

		require.True(t, ok)
		assert.Equal(t, "foo", v)
	})

	t.Run("preserves value case", func(t *testing.T) {
		t.Parallel()

		el := `<div id="MainContent"></div>`

		v, ok := htmlgrep.GetAttr(el, "id")

		require.True(t, ok)
		assert.Equal(t, "MainContent", v)
	})

	t.Run("returns absent for a missing attribute", func(t *testing.T) {
		t.Parallel()

		el := `<div class="x"></div>`

		_, ok := htmlgrep.GetAttr(el, "href")

		assert.False(t, ok)
	})

	t.Run("returns an empty present value", func(t *testing.T) {
		t.Parallel()

		el := `<div data-empty="">x</div>`

		v, ok := htmlgrep.GetAttr(el, "data-empty")

		require.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("requires a word boundary before the name", func(t *testing.T) {
		t.Parallel()

		el := `<div subtitle="no">x</div>`

		_, ok := htmlgrep.GetAttr(el, "title")

		assert.False(t, ok)
	})

	t.Run("tolerates whitespace around the equals sign", func(t *testing.T) {
		t.Parallel()

		el := `<div id = "spaced">x</div>`

		v, ok := htmlgrep.GetAttr(el, "id")

		require.True(t, ok)
		assert.Equal(t, "spaced", v)
	})

	t.Run("searches the whole span, first match wins", func(t *testing.T) {
		t.Parallel()

		// The search is not limited to the opening tag. The outer
		// element's attribute appears first so it wins here, but a
		// child-only attribute is still found. Documented behavior.
		el := `<div href="/outer"><a href="/inner">L</a></div>`
		v, ok := htmlgrep.GetAttr(el, "href")
		require.True(t, ok)
		assert.Equal(t, "/outer", v)

		childOnly := `<div><a href="/inner">L</a></div>`
		v, ok = htmlgrep.GetAttr(childOnly, "href")
		require.True(t, ok)
		assert.Equal(t, "/inner", v)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		el := `<a href="/x">L</a>`

		v1, ok1 := htmlgrep.GetAttr(el, "href")
		v2, ok2 := htmlgrep.GetAttr(el, "href")

		assert.Equal(t, ok1, ok2)
		assert.Equal(t, v1, v2)
	})

	t.Run("returns absent for an empty name", func(t *testing.T) {
		t.Parallel()

		_, ok := htmlgrep.GetAttr(`<div id="x"></div>`, "")

		assert.False(t, ok)
	})
}

func TestGetAttrs(t *testing.T) {
	t.Parallel()

	t.Run("preserves length and order with absent entries", func(t *testing.T) {
		t.Parallel()

		elements := []string{
			`<a href="/one">1</a>`,
			`<a>2</a>`,
			`<a href="/three">3</a>`,
		}

		values := htmlgrep.GetAttrs(elements, "href")

		require.Len(t, values, 3)
		require.NotNil(t, values[0])
		assert.Equal(t, "/one", *values[0])
		assert.Nil(t, values[1])
		require.NotNil(t, values[2])
		assert.Equal(t, "/three", *values[2])
	})

	t.Run("returns an empty slice for no elements", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, htmlgrep.GetAttrs(nil, "href"))
	})
}

func TestGetText(t *testing.T) {
	t.Parallel()

	t.Run("strips all tags including nested ones", func(t *testing.T) {
		t.Parallel()

		el := `<p>one <b>two</b> three</p>`

		assert.Equal(t, "one two three", htmlgrep.GetText(el))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		el := "<div>\n  padded  \n</div>"

		assert.Equal(t, "padded", htmlgrep.GetText(el))
	})

	t.Run("leaves character references undecoded", func(t *testing.T) {
		t.Parallel()

		el := `<p>a &amp; b</p>`

		assert.Equal(t, "a &amp; b", htmlgrep.GetText(el))
	})

	t.Run("returns empty string for tag-only input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, htmlgrep.GetText(`<div><br></div>`))
	})

	t.Run("never contains angle brackets", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>a</p><p><span>b</span></p></div>`
		for _, el := range htmlgrep.GetByTag(html, "p") {
			text := htmlgrep.GetText(el)
			assert.NotContains(t, text, "<")
			assert.NotContains(t, text, ">")
		}
	})
}

func TestInnerHTML(t *testing.T) {
	t.Parallel()

	t.Run("strips only the outermost tags", func(t *testing.T) {
		t.Parallel()

		el := `<div><p>x</p></div>`

		assert.Equal(t, `<p>x</p>`, htmlgrep.InnerHTML(el))
	})

	t.Run("keeps nested same-named close tags inside", func(t *testing.T) {
		t.Parallel()

		el := `<div>a<div>b</div>c</div>`

		assert.Equal(t, `a<div>b</div>c`, htmlgrep.InnerHTML(el))
	})

	t.Run("returns self-closing spans unchanged", func(t *testing.T) {
		t.Parallel()

		el := `<img src="/x.png"/>`

		assert.Equal(t, el, htmlgrep.InnerHTML(el))
	})

	t.Run("returns malformed spans unchanged", func(t *testing.T) {
		t.Parallel()

		el := `plain text`

		assert.Equal(t, el, htmlgrep.InnerHTML(el))
	})

	t.Run("spans multiple lines", func(t *testing.T) {
		t.Parallel()

		el := "<div>\nline one\nline two\n</div>"

		assert.Equal(t, "\nline one\nline two\n", htmlgrep.InnerHTML(el))
	})
}
