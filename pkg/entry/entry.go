// Package entry implements the vocabulary entry model: parsing a delimited
// text line into an Entry, normalizing the headword, filtering tags,
// computing the alphabetization key, merging duplicates and rendering the
// entry back to a line.
package entry

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// DefaultSeparator separates the five fields of a line.
	DefaultSeparator = "\t"
	// SubFieldSeparator separates the values of a list field.
	SubFieldSeparator = "<br>"
)

// Key is the identity of an entry. Two entries with the same key are the
// same word and get merged; the list fields are payload and not part of it.
type Key struct {
	Language Language
	Headword string
	Tags     TagSet
}

// Entry is a single vocabulary record.
//
// Language, headword and tags are fixed at construction. The list fields
// only grow through the Add* methods and Merge, which drop empty and
// duplicate values. An Entry is not safe for concurrent mutation.
type Entry struct {
	language Language
	headword string
	tags     TagSet

	meanings []string
	examples []string
	notes    []string

	sep string
}

// Option sets optional fields at construction.
type Option func(*Entry)

// WithMeanings appends meanings in order.
func WithMeanings(values ...string) Option {
	return func(e *Entry) {
		for _, v := range values {
			e.meanings = appendValues(e.meanings, v)
		}
	}
}

// WithExamples appends example sentences in order.
func WithExamples(values ...string) Option {
	return func(e *Entry) {
		for _, v := range values {
			e.examples = appendValues(e.examples, v)
		}
	}
}

// WithNotes appends free-form notes in order.
func WithNotes(values ...string) Option {
	return func(e *Entry) {
		for _, v := range values {
			e.notes = appendValues(e.notes, v)
		}
	}
}

// WithSeparator sets the field separator used by Line. An empty separator
// keeps the default tab.
func WithSeparator(sep string) Option {
	return func(e *Entry) {
		if sep != "" {
			e.sep = sep
		}
	}
}

// New builds an entry. The language code is validated, the headword is
// normalized according to the language and tags, and the tag set is
// restricted to the tag vocabulary.
func New(lang, headword string, tags TagSet, opts ...Option) (*Entry, error) {
	l, err := ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	tags &= NewTagSet(allTags...)

	word, err := normalizeHeadword(l, headword, tags)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		language: l,
		headword: word,
		tags:     tags,
		sep:      DefaultSeparator,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Entry) Language() Language { return e.language }
func (e *Entry) Headword() string   { return e.headword }
func (e *Entry) Tags() TagSet       { return e.tags }
func (e *Entry) Separator() string  { return e.sep }

// Meanings returns a copy of the meanings in significance order.
func (e *Entry) Meanings() []string { return slices.Clone(e.meanings) }

// Examples returns a copy of the example sentences.
func (e *Entry) Examples() []string { return slices.Clone(e.examples) }

// Notes returns a copy of the notes.
func (e *Entry) Notes() []string { return slices.Clone(e.notes) }

// Key returns the identity of the entry.
func (e *Entry) Key() Key {
	return Key{Language: e.language, Headword: e.headword, Tags: e.tags}
}

// Equal reports whether both entries have the same identity.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Key() == other.Key()
}

// AddMeaning appends meanings. The value may hold several meanings joined
// with SubFieldSeparator; empty and already present values are skipped.
func (e *Entry) AddMeaning(value string) { e.meanings = appendValues(e.meanings, value) }

// AddExample appends example sentences like AddMeaning.
func (e *Entry) AddExample(value string) { e.examples = appendValues(e.examples, value) }

// AddNote appends notes like AddMeaning.
func (e *Entry) AddNote(value string) { e.notes = appendValues(e.notes, value) }

// Merge folds the list fields of other into e when both are the same word.
// Existing values keep their order, new ones are appended in other's order.
// Entries with a different identity are ignored.
func (e *Entry) Merge(other *Entry) {
	if other == nil || !e.Equal(other) {
		return
	}
	for _, v := range other.meanings {
		e.AddMeaning(v)
	}
	for _, v := range other.examples {
		e.AddExample(v)
	}
	for _, v := range other.notes {
		e.AddNote(v)
	}
}

// String is a debugging representation. Use Line for the file format.
func (e *Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entry(lang=%s, word=%q, tags=[%s], meanings=%q", e.language, e.headword, e.tags, e.meanings)
	if len(e.examples) > 0 {
		fmt.Fprintf(&b, ", examples=%q", e.examples)
	}
	if len(e.notes) > 0 {
		fmt.Fprintf(&b, ", notes=%q", e.notes)
	}
	b.WriteString(")")
	return b.String()
}

func appendValues(list []string, value string) []string {
	for _, v := range strings.Split(value, SubFieldSeparator) {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(list, v) {
			continue
		}
		list = append(list, v)
	}
	return list
}
