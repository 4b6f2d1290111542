// The convert command orchestrates the pipeline:
// fetch → extract → segment → render → write.
//
// It handles flag validation, builder selection, and the single / --batch modes.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/deckpipe/batch"
	"github.com/gaurav-prasanna/deckpipe/core"
	"github.com/gaurav-prasanna/deckpipe/core/build"
	"github.com/gaurav-prasanna/deckpipe/core/extract"
	"github.com/gaurav-prasanna/deckpipe/core/fetch"
	"github.com/gaurav-prasanna/deckpipe/core/output"
	"github.com/gaurav-prasanna/deckpipe/core/segment"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagBatch     string
	flagName      string
	flagOutputDir string
	flagConfig    string
)

var convertCmd = &cobra.Command{
	Use:   "convert <url-or-file>",
	Short: "Convert a canvas export to a slide deck",
	Long: `Convert fetches a shared canvas page (or reads a saved export),
isolates the canvas content, segments it into slides, and renders the deck
as PDF (default), Markdown, or JSON. Speaker notes are written to a
sidecar text file next to the artifact.

Examples:
  deckpipe convert https://example.com/canvas/abc123
  deckpipe convert export.html --json --output_dir ./out
  deckpipe convert --batch canvases.txt --output_dir ./decks`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive, PDF is the default).
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF deck (default)")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output the canvas as Markdown")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the structured deck as JSON")

	convertCmd.Flags().StringVar(&flagBatch, "batch", "", "File listing inputs to convert, one per line")
	convertCmd.Flags().StringVar(&flagName, "name", "", "Output filename (default: the deck title)")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	convertCmd.Flags().StringVar(&flagConfig, "config", "deckpipe.toml", "Config file path")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := validateFlags(args); err != nil {
		return err
	}

	logger := newLogger()

	cfg, err := core.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir, cfg.MaxFilenameLength)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	if flagBatch != "" {
		inputs, err := batch.ReadList(flagBatch)
		if err != nil {
			return err
		}
		runner := &batch.Runner{
			Log: logger,
			Convert: func(ctx context.Context, input string) (string, error) {
				return convertOne(ctx, input, cfg, logger, writer)
			},
		}
		summary := runner.Run(ctx, inputs)
		if summary.Failed > 0 {
			fmt.Fprintf(os.Stderr, "%d/%d inputs failed\n", summary.Failed, len(inputs))
		}
		fmt.Fprintf(os.Stdout, "✓ Converted %d deck(s)\n", summary.Succeeded)
		return nil
	}

	path, err := convertOne(ctx, args[0], cfg, logger, writer)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// convertOne runs a single input through the full pipeline and returns the
// artifact path. Each call builds its own segmenter so no segmentation
// state leaks between conversions.
func convertOne(ctx context.Context, input string, cfg core.Config, logger *log.Logger, writer *output.Writer) (string, error) {
	fetcher, err := selectFetcher(input)
	if err != nil {
		return "", err
	}

	// 1. Fetch
	result, err := fetcher.Fetch(ctx, input)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract the canvas content
	fragment, err := extract.New().Extract(result.HTML)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}

	// 3. Segment into a deck
	deck, err := segment.New(cfg, logger).Segment(fragment)
	if err != nil {
		return "", fmt.Errorf("segment: %w", err)
	}

	// 4. Render to the output format
	renderer := selectRenderer(cfg, input)
	data, err := renderer.Render(deck)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	// 5. Write the artifact and the notes sidecar
	name := flagName
	if name == "" {
		name = strings.TrimSpace(deck.Title)
	}
	path, err := writer.WriteArtifact(name, data, renderer.Extension())
	if err != nil {
		return "", err
	}

	if notesPath, err := writer.WriteSpeakerNotes(path, deck.Notes); err != nil {
		return "", err
	} else if notesPath != "" {
		logger.Info("speaker notes written", "path", notesPath)
	}

	return path, nil
}

// selectFetcher picks file or HTTP retrieval based on the input shape.
func selectFetcher(input string) (core.Fetcher, error) {
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		return fetch.NewFile(), nil
	}
	parsed, err := url.Parse(input)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid input: %s (must be an existing file or a URL with scheme)", input)
	}
	return fetch.New(), nil
}

// selectRenderer creates the appropriate builder based on flags.
func selectRenderer(cfg core.Config, source string) core.Renderer {
	switch {
	case flagMarkdown:
		return build.NewMarkdownRenderer()
	case flagJSON:
		return build.NewJSONRenderer(source)
	default:
		return build.NewPDFBuilder(cfg)
	}
}

// validateFlags checks that at most one output format is chosen and that
// exactly one of <input> or --batch is given.
func validateFlags(args []string) error {
	formatCount := 0
	if flagPDF {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagBatch == "" && len(args) == 0 {
		return fmt.Errorf("an input URL/file or --batch is required")
	}
	if flagBatch != "" && len(args) > 0 {
		return fmt.Errorf("--batch and a positional input are mutually exclusive")
	}
	return nil
}
