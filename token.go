package md0

import (
	"fmt"
	"strings"
)

// TokenKind identifies the block type of a Token.
type TokenKind uint8

// Token kinds.
const (
	KindHeading TokenKind = iota + 1
	KindParagraph
	KindHorizontalRule
	KindCode
)

// String returns the variant name used in debug output.
func (k TokenKind) String() string {
	switch k {
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindHorizontalRule:
		return "HorizontalRule"
	case KindCode:
		return "Code"
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is a block-level element of a parsed document.
// The set of implementations is closed: Heading, Paragraph, HorizontalRule and Code.
type Token interface {
	Kind() TokenKind
	String() string
	token()
}

// Tokens is an ordered token sequence, the authoritative document structure.
type Tokens []Token

// Heading is an ATX heading or a setext heading produced by a dash line.
type Heading struct {
	Level   int // 1..6
	Content string
}

// Paragraph is one or more text lines joined with single spaces.
type Paragraph struct {
	Content  string
	Metadata []Metadata
}

// HorizontalRule is a dash line with no paragraph text above it.
type HorizontalRule struct{}

// Code is the verbatim body of a fenced code block.
// Every captured line is newline-terminated.
type Code struct {
	Language string
	Content  string
}

func (Heading) token()        {}
func (Paragraph) token()      {}
func (HorizontalRule) token() {}
func (Code) token()           {}

// Kind implements Token.
func (Heading) Kind() TokenKind { return KindHeading }

// Kind implements Token.
func (Paragraph) Kind() TokenKind { return KindParagraph }

// Kind implements Token.
func (HorizontalRule) Kind() TokenKind { return KindHorizontalRule }

// Kind implements Token.
func (Code) Kind() TokenKind { return KindCode }

// String formats the heading as Heading(level, "content").
func (h Heading) String() string {
	return fmt.Sprintf("Heading(%d, %q)", h.Level, h.Content)
}

// String formats the paragraph as Paragraph("content", [metadata...]).
func (p Paragraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Paragraph(%q, [", p.Content)
	for i, m := range p.Metadata {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString("])")
	return b.String()
}

// String returns "HorizontalRule".
func (HorizontalRule) String() string {
	return KindHorizontalRule.String()
}

// String formats the block as Code("language", "content").
func (c Code) String() string {
	return fmt.Sprintf("Code(%q, %q)", c.Language, c.Content)
}

// String formats the sequence one token per line.
func (ts Tokens) String() string {
	lines := make([]string, len(ts))
	for i, t := range ts {
		lines[i] = t.String()
	}
	return strings.Join(lines, "\n")
}

// MetadataKind identifies the inline construct a Metadata entry describes.
type MetadataKind uint8

// Metadata kinds.
const (
	KindLink MetadataKind = iota + 1
	KindImage
)

// String returns the variant name used in debug output.
func (k MetadataKind) String() string {
	switch k {
	case KindLink:
		return "Link"
	case KindImage:
		return "Image"
	}
	return fmt.Sprintf("MetadataKind(%d)", uint8(k))
}

// Span is a half-open byte range [Start, End) into a paragraph's Content.
type Span struct {
	Start int
	End   int
}

// String formats the span as (start, end).
func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.End)
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Metadata describes an inline link or image found in paragraph text.
// The set of implementations is closed: Link and Image.
type Metadata interface {
	Kind() MetadataKind
	// Location returns the byte range of the whole construct.
	Location() Span
	String() string
	metadata()
}

// Link is a [label](url) occurrence.
type Link struct {
	Span  Span
	Label string
	URL   string
}

// Image is a ![label](url) occurrence.
type Image struct {
	Span  Span
	Label string
	URL   string
}

func (Link) metadata()  {}
func (Image) metadata() {}

// Kind implements Metadata.
func (Link) Kind() MetadataKind { return KindLink }

// Kind implements Metadata.
func (Image) Kind() MetadataKind { return KindImage }

// Location implements Metadata.
func (l Link) Location() Span { return l.Span }

// Location implements Metadata.
func (i Image) Location() Span { return i.Span }

// String formats the link as Link((start, end), "label", "url").
func (l Link) String() string {
	return fmt.Sprintf("Link(%s, %q, %q)", l.Span, l.Label, l.URL)
}

// String formats the image as Image((start, end), "label", "url").
func (i Image) String() string {
	return fmt.Sprintf("Image(%s, %q, %q)", i.Span, i.Label, i.URL)
}
