package segment

import (
	"github.com/PuerkitoBio/goquery"
)

// extractTitle scans heading and paragraph nodes in document order and
// fills the deck's title triple: heading, subheading, and an optional
// leading speaker note.
//
// Headings keep their body role of opening a slide; a paragraph promoted
// to heading, subheading, or leading note is consumed so the body pass
// never emits or re-intercepts it. A note marker that appears after the
// first heading belongs to body content and ends the scan.
func (p *pass) extractTitle(root *goquery.Selection) {
	var heading, subheading, leadingNote string

	root.Find("h1, h2, p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := slidePrefixRe.ReplaceAllString(nodeText(sel), "")

		if notesMarkerRe.MatchString(text) {
			if heading == "" && leadingNote == "" {
				_, leadingNote = splitNotes(text)
				p.processed[sel.Get(0)] = true
				return true
			}
			return false
		}

		if text == "" {
			return true
		}
		switch {
		case heading == "":
			heading = text
			if goquery.NodeName(sel) == "p" {
				p.processed[sel.Get(0)] = true
			}
		case subheading == "":
			subheading = text
			if goquery.NodeName(sel) == "p" {
				p.processed[sel.Get(0)] = true
			}
		}
		return !(heading != "" && subheading != "" && leadingNote != "")
	})

	if heading == "" {
		heading = " " // the title placeholder may not be empty
	}
	p.deck.Title = heading
	p.deck.Subtitle = subtitleRe.ReplaceAllString(subheading, "")

	if leadingNote != "" && p.notes.Add(1, leadingNote) {
		p.deck.TitleNotes = leadingNote
	}
}
