package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TempFilePrefix is the prefix of the temporary file used by WriteFile.
const TempFilePrefix = "vocab-tmp-"

const headingPrefix = "# "

// IsHeading reports whether line is a group heading as written by Write:
// "# " followed by a single initial. Entry lines never have that shape
// because they always contain field separators.
func IsHeading(line string) bool {
	initial, ok := strings.CutPrefix(strings.TrimSpace(line), headingPrefix)
	return ok && utf8.RuneCountInString(initial) == 1 && !unicode.IsSpace([]rune(initial)[0])
}

// WriteOptions controls the layout of a written dictionary.
type WriteOptions struct {
	// GroupHeadings emits a "# X" line before each initial letter. The
	// loader skips lines for which IsHeading holds.
	GroupHeadings bool
}

// Write renders the dictionary in alphabetical order, one line per entry.
// It returns the number of entries written.
func (d *Dictionary) Write(w io.Writer, opts WriteOptions) (int, error) {
	groups, err := d.Groups()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	n := 0
	for i, g := range groups {
		if opts.GroupHeadings {
			if i > 0 {
				bw.WriteString("\n")
			}
			fmt.Fprintf(bw, "%s%s\n", headingPrefix, g.Initial)
		}
		for _, e := range g.Entries {
			line, err := e.Line()
			if err != nil {
				return n, fmt.Errorf("write %q: %w", e.Headword(), err)
			}
			bw.WriteString(line)
			bw.WriteString("\n")
			n++
		}
	}
	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}

// WriteFile writes the dictionary to path. The file is replaced atomically:
// either the old or the complete new content is visible, never a partial
// write.
func (d *Dictionary) WriteFile(path string, opts WriteOptions) (int, error) {
	var buf bytes.Buffer
	n, err := d.Write(&buf, opts)
	if err != nil {
		return 0, err
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return n, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}
