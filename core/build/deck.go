// Package build provides the slide builders that turn a Deck into a final
// artifact. Builders expose the SlideWriter capability surface; WriteDeck
// drives it over the document model in order.
package build

import "github.com/gaurav-prasanna/deckpipe/core"

// WriteDeck replays a Deck through a SlideWriter: the title slide first,
// then each content slide's elements, its tables, and its notes.
func WriteDeck(w core.SlideWriter, deck *core.Deck) {
	title := w.NewTitleSlide(deck.Title, deck.Subtitle)
	if deck.TitleNotes != "" {
		w.SetNotes(title, deck.TitleNotes)
	}

	for _, slide := range deck.Slides {
		handle := w.NewSlide(slide.Title)
		for _, el := range slide.Elements {
			switch el.Type {
			case core.ElementCode:
				w.AppendParagraph(handle, el.Text, 0, core.StyleCode)
			case core.ElementListItem:
				w.AppendParagraph(handle, el.Text, el.Level, core.StyleDefault)
			default:
				style := el.Style
				if style == "" {
					style = core.StyleDefault
				}
				w.AppendParagraph(handle, el.Text, el.Level, style)
			}
		}
		for _, table := range slide.Tables {
			w.AppendTable(handle, table.Rows, table.HasHeaderRow)
		}
		if slide.Notes != "" {
			w.SetNotes(handle, slide.Notes)
		}
	}
}
