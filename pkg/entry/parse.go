package entry

import (
	"strings"
)

// fieldCount is the number of positional fields in a line:
// headword, meanings, examples, notes, tags.
const fieldCount = 5

// ParseLine builds an entry from one line of a vocabulary file. The line must
// split into exactly five fields under sep; an empty sep means tab.
func ParseLine(lang, line, sep string) (*Entry, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	line = strings.TrimRight(line, "\r\n")

	fields := strings.Split(line, sep)
	if len(fields) != fieldCount {
		return nil, &ParseError{Line: line, Separator: sep, Want: fieldCount, Got: len(fields)}
	}

	word, meanings, examples, notes, tags := fields[0], fields[1], fields[2], fields[3], fields[4]
	return New(lang, word, ParseTags(strings.TrimSpace(tags)),
		WithMeanings(splitSubFields(meanings)...),
		WithExamples(splitSubFields(examples)...),
		WithNotes(splitSubFields(notes)...),
		WithSeparator(sep),
	)
}

// splitSubFields turns a list field into its values. An empty field gives no
// values rather than a single empty one.
func splitSubFields(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	parts := strings.Split(field, SubFieldSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
