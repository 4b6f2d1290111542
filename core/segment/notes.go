package segment

import (
	"strings"

	"github.com/gaurav-prasanna/deckpipe/core"
)

type noteKey struct {
	slide int
	text  string
}

// noteLedger is the run-scoped, order-preserving collection of speaker
// notes. A (slide, trimmed text) pair is recorded at most once no matter
// which detection path found it.
type noteLedger struct {
	seen  map[noteKey]bool
	notes []core.SpeakerNote
}

func newNoteLedger() *noteLedger {
	return &noteLedger{seen: make(map[noteKey]bool)}
}

// Add records a note and reports whether it was new. Empty notes and
// duplicates are silently dropped.
func (l *noteLedger) Add(slide int, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	key := noteKey{slide: slide, text: text}
	if l.seen[key] {
		return false
	}
	l.seen[key] = true
	l.notes = append(l.notes, core.SpeakerNote{SlideIndex: slide, Text: text})
	return true
}

// All returns the unique notes in the order they were detected.
func (l *noteLedger) All() []core.SpeakerNote {
	return l.notes
}
