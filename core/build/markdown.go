// Markdown builder. The extracted canvas fragment converts losslessly to
// Markdown, so this output skips the deck model entirely and exports the
// fragment as a plain document.
package build

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/deckpipe/core"
)

// MarkdownRenderer exports the canvas source as a Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the deck's source fragment into Markdown bytes.
func (r *MarkdownRenderer) Render(deck *core.Deck) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(deck.SourceHTML)
	if err != nil {
		return nil, fmt.Errorf("converting canvas to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
