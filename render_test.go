package md0

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTokensToHTML - Default rendering
// ---------------------------------------------------------------------------

func TestTokensToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens Tokens
		want   string
	}{
		{
			name:   "empty",
			tokens: nil,
			want:   "",
		},
		{
			name:   "heading levels",
			tokens: Tokens{Heading{Level: 1, Content: "One"}, Heading{Level: 6, Content: "Six"}},
			want:   "<h1>One</h1>\n<h6>Six</h6>",
		},
		{
			name:   "paragraph is escaped",
			tokens: Tokens{Paragraph{Content: "a < b"}},
			want:   "<p>a &lt; b</p>",
		},
		{
			name:   "all special characters",
			tokens: Tokens{Paragraph{Content: `<&>"'`}},
			want:   "<p>&lt;&amp;&gt;&#34;&#39;</p>",
		},
		{
			name:   "heading is escaped",
			tokens: Tokens{Heading{Level: 2, Content: "A & B"}},
			want:   "<h2>A &amp; B</h2>",
		},
		{
			name:   "rule",
			tokens: Tokens{HorizontalRule{}},
			want:   "<hr />",
		},
		{
			name:   "code omits language and escapes",
			tokens: Tokens{Code{Language: "html", Content: "<b>x</b>\n"}},
			want:   "<pre><code>&lt;b&gt;x&lt;/b&gt;\n</code></pre>",
		},
		{
			name: "metadata is not rendered",
			tokens: Tokens{Paragraph{
				Content:  "[a](b)",
				Metadata: ExtractMetadata("[a](b)"),
			}},
			want: "<p>[a](b)</p>",
		},
		{
			name: "one line per token",
			tokens: Tokens{
				Heading{Level: 1, Content: "T"},
				Paragraph{Content: "p"},
				HorizontalRule{},
				Code{Content: "c\n"},
			},
			want: "<h1>T</h1>\n<p>p</p>\n<hr />\n<pre><code>c\n</code></pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TokensToHTML(tt.tokens); got != tt.want {
				t.Errorf("TokensToHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokensToHTML_Idempotent(t *testing.T) {
	t.Parallel()

	tokens := Parse("# T\n\nx & y [a](b)\n\n```\n<code>\n```")
	first := TokensToHTML(tokens)
	second := TokensToHTML(tokens)
	if first != second {
		t.Errorf("rendering differs between calls:\n%s\n%s", first, second)
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_Options - Opt-in extensions
// ---------------------------------------------------------------------------

func TestRenderer_LanguageClass(t *testing.T) {
	t.Parallel()

	r := NewRenderer(WithLanguageClass())

	tests := []struct {
		name string
		code Code
		want string
	}{
		{"with language", Code{Language: "go", Content: "x\n"}, `<pre><code class="language-go">x` + "\n</code></pre>"},
		{"without language", Code{Content: "x\n"}, "<pre><code>x\n</code></pre>"},
	}

	for _, tt := range tests {
		if got := r.Render(Tokens{tt.code}); got != tt.want {
			t.Errorf("%s: Render() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderer_NoOptionsMatchesDefault(t *testing.T) {
	t.Parallel()

	tokens := Parse("# T\n\n```go\nx\n```")
	if got, want := NewRenderer().Render(tokens), TokensToHTML(tokens); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderer_Highlighting(t *testing.T) {
	t.Parallel()

	r := NewRenderer(WithHighlighting("monokai"))

	t.Run("known language", func(t *testing.T) {
		t.Parallel()

		got := r.Render(Tokens{Code{Language: "go", Content: "package main\n"}})
		if !strings.HasPrefix(got, `<pre><code class="language-go">`) {
			t.Errorf("missing language class: %q", got)
		}
		if !strings.Contains(got, "<span") {
			t.Errorf("expected highlighted spans: %q", got)
		}
		if !strings.HasSuffix(got, "</code></pre>") {
			t.Errorf("missing closing tags: %q", got)
		}
		if strings.Count(got, "<pre") != 1 {
			t.Errorf("highlighter must not add its own <pre>: %q", got)
		}
	})

	t.Run("unknown language falls back to escaping", func(t *testing.T) {
		t.Parallel()

		got := r.Render(Tokens{Code{Language: "no-such-lang", Content: "<x>\n"}})
		want := `<pre><code class="language-no-such-lang">&lt;x&gt;` + "\n</code></pre>"
		if got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("no language is not highlighted", func(t *testing.T) {
		t.Parallel()

		got := r.Render(Tokens{Code{Content: "<x>\n"}})
		if got != "<pre><code>&lt;x&gt;\n</code></pre>" {
			t.Errorf("Render() = %q", got)
		}
	})

	t.Run("stylesheet", func(t *testing.T) {
		t.Parallel()

		if css := r.HighlightCSS(); !strings.Contains(css, ".chroma") {
			t.Errorf("HighlightCSS() = %q, want chroma classes", css)
		}
		if css := NewRenderer().HighlightCSS(); css != "" {
			t.Errorf("HighlightCSS() without highlighting = %q, want empty", css)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRenderer_UnknownToken - Closed token set
// ---------------------------------------------------------------------------

type foreignToken struct{ Heading }

func TestRenderer_UnknownToken(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for foreign token type")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "unexpected token type") {
			t.Errorf("panic = %v, want unexpected token type", r)
		}
	}()

	TokensToHTML(Tokens{foreignToken{}})
}
