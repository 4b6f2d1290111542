// JSON builder. Serializes the structured deck model with conversion
// metadata for downstream tooling.
package build

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/deckpipe/core"
)

// DeckMetadata describes one conversion.
type DeckMetadata struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	SlideCount  int    `json:"slide_count"`
	ConvertedAt string `json:"converted_at"` // ISO8601
}

// DeckJSON is the complete JSON output for one canvas.
type DeckJSON struct {
	Metadata DeckMetadata `json:"metadata"`
	Deck     *core.Deck   `json:"deck"`
}

// JSONRenderer produces structured JSON output from a Deck.
type JSONRenderer struct {
	source string
}

// NewJSONRenderer creates a JSONRenderer recording the input source.
func NewJSONRenderer(source string) *JSONRenderer {
	return &JSONRenderer{source: source}
}

// Render marshals the deck and its metadata.
func (r *JSONRenderer) Render(deck *core.Deck) ([]byte, error) {
	out := DeckJSON{
		Metadata: DeckMetadata{
			Source:      r.source,
			Title:       deck.Title,
			SlideCount:  len(deck.Slides) + 1, // the title slide counts
			ConvertedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Deck: deck,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
