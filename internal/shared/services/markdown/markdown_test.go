package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("**bold** and _italic_")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>bold</strong>")
		assert.Contains(t, out, "<em>italic</em>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert('xss')</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "alert")
		assert.Contains(t, out, "hello")
	})

	t.Run("strips inline event handlers", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)
		require.NoError(t, err)
		assert.NotContains(t, out, "onerror")
	})

	t.Run("strikethrough extension is enabled", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("~~gone~~")
		require.NoError(t, err)
		assert.Contains(t, out, "<del>gone</del>")
	})

	t.Run("autolinks plain URLs", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("see https://status.helpdesk.local")
		require.NoError(t, err)
		assert.Contains(t, out, `<a href="https://status.helpdesk.local"`)
	})

	t.Run("javascript URLs are removed", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("[click](javascript:alert(1))")
		require.NoError(t, err)
		assert.NotContains(t, out, "javascript:")
	})
}

func TestSanitize(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p style="color:red" class="x">ok</p><iframe src="evil"></iframe>`)
	assert.Contains(t, out, "ok")
	assert.NotContains(t, out, "<iframe")
}
