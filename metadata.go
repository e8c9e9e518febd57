package md0

import "regexp"

// Inline patterns, compiled once at package initialization.
// Go's regexp guarantees linear-time matching.
var (
	linkPattern  = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
)

// ExtractMetadata finds every [label](url) and ![label](url) construct in text.
//
// The two patterns are scanned independently: all links come first, then all
// images, each group in left-to-right order. Image syntax also matches the link
// pattern, so every image yields a Link entry one byte narrower than its Image
// entry (the Link starts after the "!").
func ExtractMetadata(text string) []Metadata {
	links := linkPattern.FindAllStringSubmatchIndex(text, -1)
	images := imagePattern.FindAllStringSubmatchIndex(text, -1)
	if len(links) == 0 && len(images) == 0 {
		return nil
	}

	out := make([]Metadata, 0, len(links)+len(images))
	for _, m := range links {
		out = append(out, Link{
			Span:  Span{Start: m[0], End: m[1]},
			Label: text[m[2]:m[3]],
			URL:   text[m[4]:m[5]],
		})
	}
	for _, m := range images {
		out = append(out, Image{
			Span:  Span{Start: m[0], End: m[1]},
			Label: text[m[2]:m[3]],
			URL:   text[m[4]:m[5]],
		})
	}
	return out
}
