package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasicFormatting(t *testing.T) {
	r := NewRenderer()

	out := r.Render("This is **bold** and *italic* text.")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>italic</em>")
	assert.Contains(t, out, "<p>")
}

func TestRenderStripsScript(t *testing.T) {
	r := NewRenderer()

	// Raw HTML never survives rendering; the script body is reduced to
	// inert text at worst.
	out := r.Render("hello <script>alert('xss')</script> world")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "</script")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestRenderStripsDisallowedTags(t *testing.T) {
	r := NewRenderer()

	out := r.Render(`text with <img src="x" onerror="alert(1)"> image`)
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, "text with")
}

func TestRenderKeepsHeadingsUpToH3(t *testing.T) {
	r := NewRenderer()

	assert.Contains(t, r.Render("# Title"), "<h1>Title</h1>")
	assert.Contains(t, r.Render("### Sub"), "<h3>Sub</h3>")

	out := r.Render("#### Deep")
	assert.NotContains(t, out, "<h4")
	assert.Contains(t, out, "Deep")
}

func TestRenderLinks(t *testing.T) {
	r := NewRenderer()

	out := r.Render("[site](https://example.com)")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, ">site</a>")
}

func TestRenderDropsJavascriptLinks(t *testing.T) {
	r := NewRenderer()

	out := r.Render("[click](javascript:alert(1))")
	assert.NotContains(t, out, "javascript:")
}

func TestRenderLists(t *testing.T) {
	r := NewRenderer()

	out := r.Render("- one\n- two")
	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, "<li>one</li>")
	assert.Contains(t, out, "<li>two</li>")
}

func TestRenderCodeAndBlockquote(t *testing.T) {
	r := NewRenderer()

	assert.Contains(t, r.Render("use `go test` here"), "<code>go test</code>")
	assert.Contains(t, r.Render("> quoted"), "<blockquote>")
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer()

	input := "# Report\n\nSome **details** with a [link](https://example.com).\n\n- a\n- b"
	first := r.Render(input)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, r.Render(input))
	}
}

func TestSanitizeRawHTML(t *testing.T) {
	r := NewRenderer()

	out := r.Sanitize(`<p onclick="evil()">ok</p><iframe src="x"></iframe>`)
	assert.Equal(t, "<p>ok</p>", out)
}
