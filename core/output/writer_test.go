package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/deckpipe/core"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dangerous characters", `a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"whitespace runs collapse", "My   Canvas\tTitle", "My_Canvas_Title"},
		{"non-ascii dropped", "résumé", "rsum"},
		{"empty falls back", "", "canvas_export"},
		{"only junk falls back", " ", "canvas_export"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input, 100))
		})
	}
}

func TestSanitize_TruncatesLeavingRoomForExtension(t *testing.T) {
	got := Sanitize(strings.Repeat("a", 200), 100)
	assert.Len(t, got, 95)
}

func TestWriteArtifact_UniquePaths(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, 100)
	require.NoError(t, err)

	first, err := w.WriteArtifact("deck", []byte("one"), ".pdf")
	require.NoError(t, err)
	second, err := w.WriteArtifact("deck", []byte("two"), ".pdf")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "deck.pdf"), first)
	assert.Equal(t, filepath.Join(dir, "deck_1.pdf"), second)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestWriteSpeakerNotes(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, 100)
	require.NoError(t, err)

	artifact := filepath.Join(dir, "deck.pdf")
	path, err := w.WriteSpeakerNotes(artifact, []core.SpeakerNote{
		{SlideIndex: 1, Text: "welcome"},
		{SlideIndex: 2, Text: "   "},
		{SlideIndex: 3, Text: "wrap up"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "deck_speaker_notes.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Slide 1:\nwelcome\n\nSlide 3:\nwrap up\n\n", string(data))
}

func TestWriteSpeakerNotes_NothingToWrite(t *testing.T) {
	w, err := New(t.TempDir(), 100)
	require.NoError(t, err)

	path, err := w.WriteSpeakerNotes("deck.pdf", nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = w.WriteSpeakerNotes("deck.pdf", []core.SpeakerNote{{SlideIndex: 1, Text: " "}})
	require.NoError(t, err)
	assert.Empty(t, path)
}
