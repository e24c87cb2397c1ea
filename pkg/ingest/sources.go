package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoSources is returned when a source pattern matches no file.
var ErrNoSources = errors.New("no vocabulary files match")

// DefaultPattern selects the vocabulary files below a directory argument.
const DefaultPattern = "**/*.txt"

// ExpandSources resolves file paths, directories and doublestar patterns
// such as "lists/**/*.txt" into a sorted list of files without duplicates.
// Every argument has to match at least one file.
func ExpandSources(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			pattern = filepath.Join(pattern, DefaultPattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoSources, pattern)
		}
		for _, m := range matches {
			m = filepath.Clean(m)
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	slices.Sort(out)
	return out, nil
}

// MatchesSources reports whether path is selected by one of the patterns.
// The watcher uses it to ignore unrelated files in a watched directory.
func MatchesSources(patterns []string, path string) bool {
	path = filepath.Clean(path)
	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			pattern = filepath.Join(pattern, DefaultPattern)
		}
		if ok, _ := doublestar.PathMatch(filepath.Clean(pattern), path); ok {
			return true
		}
	}
	return false
}
