package segment

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/deckpipe/core"
)

// flattenList walks a list recursively, emitting one list item per direct
// <li> at the current depth, then descending into nested lists at depth+1.
// Item text is the joined text of the li's non-list children, so a nested
// list's items never leak into their parent's line.
func (p *pass) flattenList(slide *core.Slide, list *goquery.Selection, depth int) {
	level := depth
	if level > maxListLevel {
		level = maxListLevel
	}

	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		var parts []string
		li.Contents().Each(func(_ int, child *goquery.Selection) {
			node := child.Get(0)
			switch {
			case node.Type == html.TextNode:
				if t := strings.TrimSpace(node.Data); t != "" {
					parts = append(parts, t)
				}
			case node.Type == html.ElementNode && node.Data != "ul" && node.Data != "ol":
				if t := nodeText(child); t != "" {
					parts = append(parts, t)
				}
			}
		})

		text := strings.TrimSpace(strings.Join(parts, " "))
		if text != "" {
			item := core.Element{Type: core.ElementListItem, Text: text, Level: level}
			// Reuse a lone empty placeholder paragraph instead of
			// leaving a stray blank first line.
			if len(slide.Elements) == 1 && isEmptyParagraph(slide.Elements[0]) {
				slide.Elements[0] = item
			} else {
				slide.Elements = append(slide.Elements, item)
			}
		}

		li.ChildrenFiltered("ul, ol").Each(func(_ int, nested *goquery.Selection) {
			p.flattenList(slide, nested, depth+1)
		})
	})
}

func isEmptyParagraph(el core.Element) bool {
	return el.Type == core.ElementParagraph && strings.TrimSpace(el.Text) == ""
}
