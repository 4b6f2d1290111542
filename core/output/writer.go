// Package output handles safe file naming and writing for DeckPipe
// artifacts and their speaker-note sidecar files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/deckpipe/core"
)

// Writer writes rendered artifacts to disk.
type Writer struct {
	OutputDir     string
	MaxNameLength int
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string, maxNameLength int) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir, MaxNameLength: maxNameLength}, nil
}

// WriteArtifact writes rendered bytes under a sanitized, unique filename
// and returns the path used.
func (w *Writer) WriteArtifact(name string, data []byte, ext string) (string, error) {
	base := Sanitize(name, w.MaxNameLength)
	path := uniquePath(filepath.Join(w.OutputDir, base+ext))

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteSpeakerNotes writes the notes sidecar next to the artifact, one
// block per slide in slide order, skipping empty notes. Returns an empty
// path when there is nothing to write.
func (w *Writer) WriteSpeakerNotes(artifactPath string, notes []core.SpeakerNote) (string, error) {
	var b strings.Builder
	for _, note := range notes {
		text := strings.TrimSpace(note.Text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "Slide %d:\n%s\n\n", note.SlideIndex, text)
	}
	if b.Len() == 0 {
		return "", nil
	}

	ext := filepath.Ext(artifactPath)
	path := strings.TrimSuffix(artifactPath, ext) + "_speaker_notes.txt"
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing speaker notes %s: %w", path, err)
	}
	return path, nil
}

var (
	dangerousRe  = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Sanitize normalizes free text into a safe filesystem name: dangerous
// characters and whitespace runs become underscores, non-ASCII runes are
// dropped, and the result is truncated leaving room for an extension.
func Sanitize(name string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 100
	}

	name = dangerousRe.ReplaceAllString(name, "_")
	name = whitespaceRe.ReplaceAllString(name, "_")

	var b strings.Builder
	for _, ch := range name {
		if ch < 128 {
			b.WriteRune(ch)
		}
	}
	name = b.String()

	if limit := maxLength - 5; len(name) > limit {
		name = name[:limit]
	}
	if name == "" || name == "_" {
		name = "canvas_export"
	}
	return name
}

// uniquePath appends a counter when the path already exists.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
