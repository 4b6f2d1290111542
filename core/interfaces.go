// Package core defines the pipeline interfaces and the deck document model
// for DeckPipe. Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	Source     string
	StatusCode int
	HTML       string
}

// ElementType discriminates the slide element variants.
type ElementType string

const (
	ElementParagraph ElementType = "paragraph"
	ElementListItem  ElementType = "list_item"
	ElementCode      ElementType = "code"
)

// StyleHint selects the font treatment for a paragraph.
type StyleHint string

const (
	StyleDefault StyleHint = "default"
	StyleCode    StyleHint = "code"
)

// Element is one content item on a slide. The meaning of the fields
// depends on Type: paragraphs carry Style, list items carry Level
// (nesting depth, clamped to 4), code blocks carry only Text.
type Element struct {
	Type  ElementType `json:"type"`
	Text  string      `json:"text"`
	Level int         `json:"level,omitempty"`
	Style StyleHint   `json:"style,omitempty"`
}

// Table is a rectangular text grid. Tables live in a separate per-slide
// collection because they render through their own shape path, not the
// slide's text body.
type Table struct {
	Rows         [][]string `json:"rows"`
	HasHeaderRow bool       `json:"has_header_row"`
}

// Slide is one output unit of the deck: a title plus ordered content
// elements, tables, and optional speaker notes.
type Slide struct {
	Title       string    `json:"title"`
	Elements    []Element `json:"elements"`
	Tables      []Table   `json:"tables,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ShrinkToFit bool      `json:"-"`
}

// SpeakerNote is one deduplicated note, keyed by the 1-based index of the
// slide it attaches to (the title slide is index 1).
type SpeakerNote struct {
	SlideIndex int    `json:"slide"`
	Text       string `json:"text"`
}

// Deck is the complete document model produced by the segmenter.
// SourceHTML keeps the extracted canvas fragment for lossless exports.
type Deck struct {
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle,omitempty"`
	TitleNotes string        `json:"title_notes,omitempty"`
	Slides     []*Slide      `json:"slides"`
	Notes      []SpeakerNote `json:"speaker_notes,omitempty"`
	SourceHTML string        `json:"-"`
}

// Fetcher retrieves raw HTML for a canvas page.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor isolates the canvas content fragment from a full HTML page.
type Extractor interface {
	Extract(html string) (string, error)
}

// Segmenter maps an extracted HTML fragment to a Deck.
type Segmenter interface {
	Segment(fragment string) (*Deck, error)
}

// SlideWriter is the capability surface a deck builder exposes. The deck
// walk drives it slide by slide; implementations are append-only and never
// mutate text content. Slide handles are the writer's own indices.
type SlideWriter interface {
	NewTitleSlide(title, subtitle string) int
	NewSlide(title string) int
	AppendParagraph(slide int, text string, level int, style StyleHint)
	AppendTable(slide int, rows [][]string, hasHeader bool)
	SetNotes(slide int, text string)
}

// Renderer converts a Deck into a final output artifact.
type Renderer interface {
	Render(deck *Deck) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}
