package md0

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighter renders code block bodies through chroma.
type highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func newHighlighter(styleName string) *highlighter {
	return &highlighter{
		style: styles.Get(styleName),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),          // stylesheet instead of inline styles
			chromahtml.PreventSurroundingPre(true), // the renderer writes <pre><code> itself
		),
	}
}

// highlight writes the highlighted body of c to b. It reports false, writing
// nothing, when the language is unknown or tokenization fails.
func (h *highlighter) highlight(b *strings.Builder, c Code) bool {
	if c.Language == "" {
		return false
	}
	lexer := lexers.Get(c.Language)
	if lexer == nil {
		return false
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, c.Content)
	if err != nil {
		return false
	}

	var out strings.Builder
	if err := h.formatter.Format(&out, h.style, it); err != nil {
		return false
	}
	b.WriteString(out.String())
	return true
}

func (h *highlighter) css() string {
	var out strings.Builder
	if err := h.formatter.WriteCSS(&out, h.style); err != nil {
		return ""
	}
	return out.String()
}
