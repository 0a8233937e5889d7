// Package markdown converts untrusted free text into sanitized HTML fragments.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer renders markdown and strips everything outside a fixed allow-list.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds a renderer with the service's tag/attribute allow-list:
// basic block and inline formatting, headings 1-3, code, blockquotes, and
// anchors restricted to href/target/rel. Everything else is stripped, not
// escaped.
func NewRenderer() *Renderer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "em", "strong", "ul", "ol", "li", "h1", "h2", "h3", "code", "pre", "blockquote")
	policy.AllowAttrs("href", "target", "rel").OnElements("a")
	policy.AllowStandardURLs()

	return &Renderer{
		md:     goldmark.New(),
		policy: policy,
	}
}

// Render converts markdown input to a sanitized HTML fragment. A render
// failure falls back to sanitizing the raw text so a submission is never
// rejected for malformed markdown. Deterministic for identical input.
func (r *Renderer) Render(input string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(input), &buf); err != nil {
		return r.policy.Sanitize(input)
	}
	return r.policy.Sanitize(buf.String())
}

// Sanitize applies the allow-list to an HTML fragment without rendering.
func (r *Renderer) Sanitize(input string) string {
	return r.policy.Sanitize(input)
}
