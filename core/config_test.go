package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1000, cfg.MaxSlideContentLength)
	assert.Equal(t, 100, cfg.MaxFilenameLength)
	assert.Equal(t, "Courier", cfg.Fonts.Code)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckpipe.toml")
	content := `
max_slide_content_length = 500

[fonts]
code = "Menlo"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxSlideContentLength)
	assert.Equal(t, "Menlo", cfg.Fonts.Code)
	// Untouched fields keep their defaults.
	assert.Equal(t, 100, cfg.MaxFilenameLength)
	assert.Equal(t, "Helvetica", cfg.Fonts.Default)
}
