package pipeline

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// DefaultDocumentTitle is used when a document has no title of its own.
const DefaultDocumentTitle = "Document"

// documentTemplate wraps a rendered fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// DocumentWrapper defines the contract for turning a fragment into a page.
type DocumentWrapper interface {
	WrapDocument(ctx context.Context, fragment, title string) string
}

// HTML5Document wraps fragments in a minimal HTML5 page.
type HTML5Document struct{}

// WrapDocument returns fragment inside an HTML5 skeleton. The title is
// escaped; an empty title becomes DefaultDocumentTitle.
func (d *HTML5Document) WrapDocument(ctx context.Context, fragment, title string) string {
	if ctx.Err() != nil {
		return fragment
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultDocumentTitle
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), fragment)
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + "\n" + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
