package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var headingAtoms = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
}

// FirstHeadingText returns the text of the first h1-h6 element in an HTML
// fragment, whitespace-trimmed and with entities decoded. Returns "" when the
// fragment has no heading or cannot be parsed.
func FirstHeadingText(fragment string) string {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return ""
	}

	for _, n := range nodes {
		if h := findHeading(n); h != nil {
			var b strings.Builder
			collectText(&b, h)
			return strings.TrimSpace(b.String())
		}
	}
	return ""
}

// findHeading returns the first heading in document order under n.
func findHeading(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && headingAtoms[n.DataAtom] {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if h := findHeading(c); h != nil {
			return h
		}
	}
	return nil
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
