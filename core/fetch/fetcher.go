// Package fetch implements the Fetcher interface.
// It retrieves a shared canvas page over HTTP or reads a saved export from
// the local filesystem.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gaurav-prasanna/deckpipe/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "DeckPipe/1.0 (https://github.com/gaurav-prasanna/deckpipe)"
)

// HTTPFetcher fetches canvas pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the HTML content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		Source:     url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// FileFetcher reads a saved canvas export from disk.
type FileFetcher struct{}

// NewFile creates a FileFetcher.
func NewFile() *FileFetcher {
	return &FileFetcher{}
}

// Fetch reads the HTML file at the given path.
func (f *FileFetcher) Fetch(_ context.Context, path string) (*core.FetchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &core.FetchResult{Source: path, HTML: string(data)}, nil
}
