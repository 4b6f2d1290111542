package build

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/deckpipe/core"
)

func sampleDeck() *core.Deck {
	return &core.Deck{
		Title:      "Intro",
		Subtitle:   "Basics",
		TitleNotes: "welcome",
		SourceHTML: "<div><h1>Intro</h1><p>hello</p></div>",
		Slides: []*core.Slide{
			{
				Title: "Agenda",
				Elements: []core.Element{
					{Type: core.ElementListItem, Text: "first", Level: 0},
					{Type: core.ElementListItem, Text: "second", Level: 1},
					{Type: core.ElementCode, Text: "x := 1"},
				},
				Tables: []core.Table{{Rows: [][]string{{"a", "b"}, {"c", "d"}}, HasHeaderRow: true}},
				Notes:  "wrap up",
			},
		},
		Notes: []core.SpeakerNote{{SlideIndex: 1, Text: "welcome"}, {SlideIndex: 2, Text: "wrap up"}},
	}
}

// recordingWriter captures the WriteDeck call sequence.
type recordingWriter struct {
	calls []string
}

func (r *recordingWriter) NewTitleSlide(title, subtitle string) int {
	r.calls = append(r.calls, "title:"+title+"/"+subtitle)
	return len(r.calls)
}

func (r *recordingWriter) NewSlide(title string) int {
	r.calls = append(r.calls, "slide:"+title)
	return len(r.calls)
}

func (r *recordingWriter) AppendParagraph(_ int, text string, level int, style core.StyleHint) {
	r.calls = append(r.calls, "para:"+text+"/"+string(style))
	_ = level
}

func (r *recordingWriter) AppendTable(_ int, rows [][]string, hasHeader bool) {
	r.calls = append(r.calls, "table")
	_, _ = rows, hasHeader
}

func (r *recordingWriter) SetNotes(_ int, text string) {
	r.calls = append(r.calls, "notes:"+text)
}

func TestWriteDeck_OrderAndStyles(t *testing.T) {
	w := &recordingWriter{}
	WriteDeck(w, sampleDeck())

	assert.Equal(t, []string{
		"title:Intro/Basics",
		"notes:welcome",
		"slide:Agenda",
		"para:first/default",
		"para:second/default",
		"para:x := 1/code",
		"table",
		"notes:wrap up",
	}, w.calls)
}

func TestPDFBuilder_RendersDeck(t *testing.T) {
	data, err := NewPDFBuilder(core.DefaultConfig()).Render(sampleDeck())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFBuilder_Extension(t *testing.T) {
	assert.Equal(t, ".pdf", NewPDFBuilder(core.DefaultConfig()).Extension())
}

func TestMarkdownRenderer_ExportsSource(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sampleDeck())
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Intro")
	assert.Contains(t, string(data), "hello")
}

func TestJSONRenderer_StructuredOutput(t *testing.T) {
	data, err := NewJSONRenderer("export.html").Render(sampleDeck())
	require.NoError(t, err)

	var out DeckJSON
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "export.html", out.Metadata.Source)
	assert.Equal(t, "Intro", out.Metadata.Title)
	assert.Equal(t, 2, out.Metadata.SlideCount)
	require.Len(t, out.Deck.Slides, 1)
	assert.Equal(t, "Agenda", out.Deck.Slides[0].Title)
	require.Len(t, out.Deck.Notes, 2)
}
