// Package extract implements the Extractor interface.
// It isolates the canvas content from a full HTML page by:
//  1. Removing noise elements (nav, chrome, scripts, media)
//  2. Finding the best canvas container (.markdown, <main>, <article>, <body>)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// These contribute nothing to the slide content.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".toolbar", ".composer",
}

// containerSelectors are tried in priority order. Canvas exports wrap the
// document body in a .markdown container; plain saved pages fall back to
// the usual semantic elements.
var containerSelectors = []string{".markdown", "main", "article", "body"}

// CanvasExtractor strips chrome from a captured page and returns the
// canvas content fragment.
type CanvasExtractor struct{}

// New creates a CanvasExtractor.
func New() *CanvasExtractor {
	return &CanvasExtractor{}
}

// Extract takes raw HTML and returns the HTML fragment containing only the
// canvas content.
func (e *CanvasExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range containerSelectors {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}
