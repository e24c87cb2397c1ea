package entry

import (
	"strings"
)

// Tag is a grammatical tag from the closed tag vocabulary. The string form is
// the code used in the text files.
type Tag string

const (
	Adjective   Tag = "adj"
	Adverb      Tag = "adv"
	Conjunction Tag = "conj"
	Expression  Tag = "expr"
	Noun        Tag = "n"
	Pronoun     Tag = "pron"
	Preposition Tag = "prep"
	Verb        Tag = "v"

	Feminine  Tag = "f"
	Masculine Tag = "m"
	Neuter    Tag = "nt"
	Plural    Tag = "pl"
)

// allTags is the closed vocabulary in canonical rendering order.
var allTags = []Tag{
	Adjective, Adverb, Conjunction, Expression, Noun, Pronoun, Preposition, Verb,
	Feminine, Masculine, Neuter, Plural,
}

var tagBits = func() map[Tag]TagSet {
	m := make(map[Tag]TagSet, len(allTags))
	for i, t := range allTags {
		m[t] = 1 << uint(i)
	}
	return m
}()

func (t Tag) String() string { return string(t) }

// IsValid reports whether t belongs to the tag vocabulary.
func (t Tag) IsValid() bool {
	_, ok := tagBits[t]
	return ok
}

// IsMarker reports whether t is a noun gender or number marker.
func (t Tag) IsMarker() bool {
	switch t {
	case Feminine, Masculine, Neuter, Plural:
		return true
	}
	return false
}

// TagSet is a set of tags. The zero value is the empty set.
type TagSet uint16

// NewTagSet builds a set from known tags; unknown tags are ignored.
func NewTagSet(tags ...Tag) TagSet {
	var s TagSet
	for _, t := range tags {
		s |= tagBits[t]
	}
	return s
}

// ParseTags tokenizes a raw tag field: tokens are separated by spaces and each
// token may hold several dot-separated tags ("n.f" is noun and feminine).
// Tokens outside the vocabulary are dropped silently.
func ParseTags(raw string) TagSet {
	var codes []string
	for _, token := range strings.Split(raw, " ") {
		if token == "" {
			continue
		}
		codes = append(codes, strings.Split(token, ".")...)
	}
	return FilterTags(codes)
}

// FilterTags keeps the codes that belong to the tag vocabulary.
func FilterTags(codes []string) TagSet {
	var s TagSet
	for _, c := range codes {
		s |= tagBits[Tag(c)]
	}
	return s
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	bit, ok := tagBits[t]
	return ok && s&bit != 0
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	n := 0
	for _, t := range allTags {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Tags returns the members in canonical order.
func (s TagSet) Tags() []Tag {
	var out []Tag
	for _, t := range allTags {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s TagSet) hasMarker() bool {
	for _, t := range allTags {
		if t.IsMarker() && s.Has(t) {
			return true
		}
	}
	return false
}

// String lists the tag codes separated by spaces, without noun expansion.
// It never fails and is meant for storage keys and diagnostics.
func (s TagSet) String() string {
	tags := s.Tags()
	codes := make([]string, len(tags))
	for i, t := range tags {
		codes[i] = string(t)
	}
	return strings.Join(codes, " ")
}

// Format renders the set for the tags field of a line. Gender and number
// markers render as "n.<marker>" and imply the noun tag, so a bare "n" is
// only written when no marker is present. Markers without the noun tag are
// a TagError.
func (s TagSet) Format() (string, error) {
	if !s.hasMarker() {
		return s.String(), nil
	}
	if !s.Has(Noun) {
		return "", &TagError{Tags: s}
	}
	var out []string
	for _, t := range allTags {
		if !s.Has(t) || t == Noun {
			continue
		}
		if t.IsMarker() {
			out = append(out, string(Noun)+"."+string(t))
			continue
		}
		out = append(out, string(t))
	}
	return strings.Join(out, " "), nil
}
