// Package md0 tokenizes a small Markdown dialect into block tokens and renders
// those tokens as HTML.
//
// # Quick Start
//
// Tokenize, inspect, render:
//
//	tokens := md0.Parse("# Title\n\nSee [Docs](https://example.com).")
//	for _, t := range tokens {
//	    fmt.Println(t) // Heading(1, "Title"), Paragraph("See ...", [Link(...)])
//	}
//	html := md0.TokensToHTML(tokens)
//
// Parse and TokensToHTML never fail and keep no state between calls; they are
// safe for concurrent use.
//
// # Block Types
//
// The tokenizer recognizes exactly four blocks:
//
//   - Heading: "# " through "###### " lines, or a text line followed by a
//     dash line ("---"), which makes a level-1 heading
//   - Paragraph: consecutive text lines joined with single spaces
//   - HorizontalRule: a dash line with no paragraph text above it
//   - Code: lines between a "```lang" fence and a closing "```"
//
// Lists, blockquotes, tables, emphasis and raw HTML are not recognized; their
// text ends up in paragraphs.
//
// # Inline Metadata
//
// Each Paragraph carries the [label](url) links and ![label](url) images found
// in its text, with byte spans into Paragraph.Content. Links are listed before
// images. An image also matches the link syntax, so it appears twice: once as
// an Image and once as a Link starting one byte later.
//
// The renderer does not turn metadata into <a> or <img> elements; it escapes
// paragraph text as is.
//
// # Rendering Options
//
// Use NewRenderer for extensions that are off by default:
//
//	r := md0.NewRenderer(
//	    md0.WithLanguageClass(),        // <code class="language-go">
//	    md0.WithHighlighting("monokai"), // chroma syntax highlighting
//	)
//	html := r.Render(tokens)
//
// # Conversion Pipeline
//
// Converter wraps the tokenizer for whole documents:
//
//  1. Preprocessing (line ending normalization, byte order mark removal)
//  2. Tokenization and rendering, or goldmark as a CommonMark reference engine
//  3. Optional standalone HTML5 page with injected CSS
//
// Example:
//
//	conv, err := md0.NewConverter(md0.WithEngine(md0.EngineNative))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, md0.Input{Markdown: content, Document: true})
//
// # Diagnostics
//
// Parser and Converter accept a zerolog.Logger. Without one, nothing is logged.
package md0
