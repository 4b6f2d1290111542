package core

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FontFallbacks names the fonts used per content kind. Consumed by the
// slide builders only; the segmenter never looks at them.
type FontFallbacks struct {
	Default  string `toml:"default"`
	Code     string `toml:"code"`
	Math     string `toml:"math"`
	Fallback string `toml:"fallback"`
}

// Config holds the recognized converter options.
type Config struct {
	MaxSlideContentLength int           `toml:"max_slide_content_length"`
	MaxFilenameLength     int           `toml:"max_filename_length"`
	Fonts                 FontFallbacks `toml:"fonts"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxSlideContentLength: 1000,
		MaxFilenameLength:     100,
		Fonts: FontFallbacks{
			Default:  "Helvetica",
			Code:     "Courier",
			Math:     "Times",
			Fallback: "Arial",
		},
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if cfg.MaxSlideContentLength <= 0 {
		cfg.MaxSlideContentLength = DefaultConfig().MaxSlideContentLength
	}
	if cfg.MaxFilenameLength <= 0 {
		cfg.MaxFilenameLength = DefaultConfig().MaxFilenameLength
	}
	return cfg, nil
}
