package md0

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithLanguageClass adds class="language-X" to the <code> element of code
// blocks that declare a language.
func WithLanguageClass() RenderOption {
	return func(r *Renderer) {
		r.languageClass = true
	}
}

// WithHighlighting highlights code blocks with a recognized language using the
// named chroma style. Output uses CSS classes; see Renderer.HighlightCSS.
// An unknown style name falls back to chroma's default style.
func WithHighlighting(style string) RenderOption {
	return func(r *Renderer) {
		r.highlighter = newHighlighter(style)
	}
}

// Renderer maps tokens to HTML. Without options it produces exactly the
// output of TokensToHTML. A Renderer is safe for concurrent use.
type Renderer struct {
	languageClass bool
	highlighter   *highlighter
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...RenderOption) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// TokensToHTML renders tokens as HTML, one element per token, joined with
// newlines. All text is entity-escaped; inline link and image syntax is left
// as escaped text.
func TokensToHTML(tokens Tokens) string {
	return defaultRenderer.Render(tokens)
}

// Render renders tokens as HTML.
func (r *Renderer) Render(tokens Tokens) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte('\n')
		}
		r.renderToken(&b, t)
	}
	return b.String()
}

// HighlightCSS returns the stylesheet for highlighted code blocks, or "" when
// highlighting is off.
func (r *Renderer) HighlightCSS() string {
	if r.highlighter == nil {
		return ""
	}
	return r.highlighter.css()
}

func (r *Renderer) renderToken(b *strings.Builder, t Token) {
	switch t := t.(type) {
	case Heading:
		level := strconv.Itoa(t.Level)
		b.WriteString("<h" + level + ">")
		b.WriteString(html.EscapeString(t.Content))
		b.WriteString("</h" + level + ">")
	case Paragraph:
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(t.Content))
		b.WriteString("</p>")
	case HorizontalRule:
		b.WriteString("<hr />")
	case Code:
		r.renderCode(b, t)
	default:
		panic(fmt.Sprintf("md0: unexpected token type %T", t))
	}
}

func (r *Renderer) renderCode(b *strings.Builder, c Code) {
	b.WriteString("<pre><code")
	if c.Language != "" && (r.languageClass || r.highlighter != nil) {
		b.WriteString(` class="language-`)
		b.WriteString(html.EscapeString(c.Language))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	if r.highlighter == nil || !r.highlighter.highlight(b, c) {
		b.WriteString(html.EscapeString(c.Content))
	}
	b.WriteString("</code></pre>")
}
