package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PrefersCanvasContainer(t *testing.T) {
	html := `<html><body>
		<nav>chrome</nav>
		<div class="markdown"><h1>Title</h1><p>body</p></div>
		<footer>legal</footer>
	</body></html>`

	got, err := New().Extract(html)
	require.NoError(t, err)
	assert.Contains(t, got, "<h1>Title</h1>")
	assert.NotContains(t, got, "chrome")
	assert.NotContains(t, got, "legal")
}

func TestExtract_RemovesNoiseElements(t *testing.T) {
	html := `<html><body><main>
		<script>alert(1)</script>
		<style>p{}</style>
		<p>kept</p>
	</main></body></html>`

	got, err := New().Extract(html)
	require.NoError(t, err)
	assert.Contains(t, got, "kept")
	assert.NotContains(t, got, "alert(1)")
	assert.NotContains(t, got, "p{}")
}

func TestExtract_FallsBackToBody(t *testing.T) {
	got, err := New().Extract("<html><body><p>just text</p></body></html>")
	require.NoError(t, err)
	assert.Contains(t, got, "just text")
}
