// Package dictionary holds a collection of vocabulary entries for one
// language. Entries with the same identity are merged on insertion; the
// collection can be sorted, grouped by initial letter and written back to a
// vocabulary file.
package dictionary

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/japaniel/vocab/pkg/entry"
)

// ErrLanguageMismatch is returned when an entry of another language is added.
var ErrLanguageMismatch = errors.New("entry language does not match dictionary")

// Dictionary is a collection of entries keyed by identity. It is not safe for
// concurrent use; the loader serializes all writes through one goroutine.
type Dictionary struct {
	lang    entry.Language
	entries map[entry.Key]*entry.Entry
	// order keeps insertion order so Entries is deterministic.
	order []entry.Key
	// byWord indexes keys by lower-cased headword for Lookup.
	byWord map[string][]entry.Key
}

// New creates an empty dictionary for lang.
func New(lang entry.Language) *Dictionary {
	return &Dictionary{
		lang:    lang,
		entries: make(map[entry.Key]*entry.Entry),
		byWord:  make(map[string][]entry.Key),
	}
}

func (d *Dictionary) Language() entry.Language { return d.lang }

// Len returns the number of distinct entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Add inserts e, or merges it into the entry with the same identity. It
// reports whether a merge happened. The dictionary keeps e itself when it is
// new, so callers must not mutate it afterwards.
func (d *Dictionary) Add(e *entry.Entry) (merged bool, err error) {
	if e.Language() != d.lang {
		return false, fmt.Errorf("%w: %s entry %q in %s dictionary", ErrLanguageMismatch, e.Language(), e.Headword(), d.lang)
	}
	key := e.Key()
	if existing, ok := d.entries[key]; ok {
		existing.Merge(e)
		return true, nil
	}
	d.entries[key] = e
	d.order = append(d.order, key)
	word := strings.ToLower(e.Headword())
	d.byWord[word] = append(d.byWord[word], key)
	return false, nil
}

// Get returns the entry with the given identity.
func (d *Dictionary) Get(key entry.Key) (*entry.Entry, bool) {
	e, ok := d.entries[key]
	return e, ok
}

// Entries returns the entries in insertion order.
func (d *Dictionary) Entries() []*entry.Entry {
	out := make([]*entry.Entry, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.entries[k])
	}
	return out
}

// Sorted returns the entries in alphabetical order. A headword without a
// sortable part fails the whole sort rather than landing at an arbitrary
// position.
func (d *Dictionary) Sorted() ([]*entry.Entry, error) {
	type keyed struct {
		key string
		e   *entry.Entry
	}
	items := make([]keyed, 0, len(d.order))
	for _, e := range d.Entries() {
		k, err := e.SortKey()
		if err != nil {
			return nil, err
		}
		items = append(items, keyed{key: k, e: e})
	}
	slices.SortFunc(items, func(a, b keyed) int {
		return entry.CompareKeyed(a.key, a.e, b.key, b.e)
	})

	out := make([]*entry.Entry, len(items))
	for i, it := range items {
		out[i] = it.e
	}
	return out, nil
}

// Group is a run of sorted entries sharing an initial letter.
type Group struct {
	Initial string
	Entries []*entry.Entry
}

// Groups returns the sorted entries grouped by upper-cased initial.
func (d *Dictionary) Groups() ([]Group, error) {
	sorted, err := d.Sorted()
	if err != nil {
		return nil, err
	}
	var groups []Group
	for _, e := range sorted {
		initial, err := e.Initial()
		if err != nil {
			return nil, err
		}
		initial = upperInitial(initial)
		if n := len(groups); n > 0 && groups[n-1].Initial == initial {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, Group{Initial: initial, Entries: []*entry.Entry{e}})
	}
	return groups, nil
}

func upperInitial(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r))
}
