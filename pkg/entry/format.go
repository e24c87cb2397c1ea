package entry

import (
	"fmt"
	"strings"
)

// FormatTags renders the tags field. See TagSet.Format.
func (e *Entry) FormatTags() (string, error) { return e.tags.Format() }

func (e *Entry) FormatMeanings() string { return strings.Join(e.meanings, SubFieldSeparator) }
func (e *Entry) FormatExamples() string { return strings.Join(e.examples, SubFieldSeparator) }
func (e *Entry) FormatNotes() string    { return strings.Join(e.notes, SubFieldSeparator) }

// Line renders the entry in the file format, without a trailing newline:
//
//	headword SEP meanings SEP examples SEP notes SEP tags
//
// ParseLine with the same separator gives back an equal entry.
func (e *Entry) Line() (string, error) {
	tags, err := e.FormatTags()
	if err != nil {
		return "", err
	}
	fields := []string{
		e.headword,
		e.FormatMeanings(),
		e.FormatExamples(),
		e.FormatNotes(),
		tags,
	}
	for _, f := range fields {
		if strings.ContainsAny(f, "\r\n") {
			return "", fmt.Errorf("%w: %q", ErrLineBreakInValue, f)
		}
		if strings.Contains(f, e.sep) {
			return "", fmt.Errorf("%w: %q in %q", ErrSeparatorInValue, e.sep, f)
		}
	}
	return strings.Join(fields, e.sep), nil
}
