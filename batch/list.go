package batch

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ReadList loads a batch input file: one URL or file path per line, blank
// lines and '#' comments skipped, duplicates dropped in order.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	queue := NewQueue()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !IsConvertible(line) {
			return nil, fmt.Errorf("invalid batch input: %s", line)
		}
		queue.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	if len(queue.All()) == 0 {
		return nil, fmt.Errorf("no inputs found in %s", path)
	}
	return queue.All(), nil
}

// IsConvertible checks that an input is either a plausible URL (scheme and
// host) or a local path. Paths are only validated for shape here; a missing
// file surfaces as a per-input conversion failure.
func IsConvertible(input string) bool {
	if strings.Contains(input, "://") {
		parsed, err := url.Parse(input)
		return err == nil && parsed.Scheme != "" && parsed.Host != ""
	}
	return input != ""
}
