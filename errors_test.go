package htmlgrep_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/63kitsune/htmlgrep"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns the code of an application error", func(t *testing.T) {
		t.Parallel()

		err := htmlgrep.Errorf(htmlgrep.ENOTFOUND, "page not found")

		assert.Equal(t, htmlgrep.ENOTFOUND, htmlgrep.ErrorCode(err))
		assert.Equal(t, "page not found", htmlgrep.ErrorMessage(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("store: %w", htmlgrep.Errorf(htmlgrep.EINVALID, "bad page"))

		assert.Equal(t, htmlgrep.EINVALID, htmlgrep.ErrorCode(err))
	})

	t.Run("treats non-application errors as internal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, htmlgrep.EINTERNAL, htmlgrep.ErrorCode(errors.New("boom")))
		assert.Equal(t, "Internal error.", htmlgrep.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, htmlgrep.ErrorCode(nil))
		assert.Empty(t, htmlgrep.ErrorMessage(nil))
	})
}
