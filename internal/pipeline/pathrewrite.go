package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewriteTargets lists the attribute rewritten for each element.
var rewriteTargets = map[atom.Atom]string{
	atom.Img: "src",
	atom.A:   "href",
}

// RewriteRelativeURLs resolves relative img[src] and a[href] references in an
// HTML fragment against sourceDir, producing absolute file:// URLs.
// References with a scheme, anchors, absolute paths, and paths escaping
// sourceDir are left alone. An empty sourceDir returns the fragment unchanged.
func RewriteRelativeURLs(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	base, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteTree(n, base)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteTree(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		if key, ok := rewriteTargets[n.DataAtom]; ok {
			for i := range n.Attr {
				if n.Attr[i].Key != key {
					continue
				}
				if resolved, ok := resolveReference(n.Attr[i].Val, base); ok {
					n.Attr[i].Val = resolved
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteTree(c, base)
	}
}

// resolveReference returns the file:// URL for a relative reference, or false
// when ref must be kept as is.
func resolveReference(ref, base string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}
	if u, err := url.Parse(ref); err != nil || u.Scheme != "" {
		return "", false
	}
	if filepath.IsAbs(ref) {
		return "", false
	}

	abs := filepath.Join(base, ref)
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), true
}
